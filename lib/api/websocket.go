package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/trispin/trispin/lib/metrics"
)

const (
	statsInterval = 2 * time.Second
	writeTimeout  = 10 * time.Second
	// events queued per client before new ones are dropped
	clientBacklog = 8
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

// wsClient funnels every write through one goroutine, as gorilla
// connections allow only a single concurrent writer.
type wsClient struct {
	conn *websocket.Conn
	send chan []byte
}

// @Summary	Open websocket for realtime status information
// @Router		/api/ws [get]
// @Param		Upgrade	header	string	true	"websocket"
// @Tags		base
// @Success	101
func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		logger().Warn(fmt.Sprintf("couldn't make websocket: %s", err))
		return
	}
	defer func(ws *websocket.Conn) {
		err := ws.Close()
		if err != nil {
			logger().Debug(fmt.Sprintf("could not close websocket: %s", err))
		}
	}(ws)

	client := &wsClient{conn: ws, send: make(chan []byte, clientBacklog)}
	a.register(client)
	defer a.unregister(client)

	go a.websocketWriter(client)

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			break
		}
		logger().Debug(fmt.Sprintf("Received: %s", msg))
	}
}

func (a *Api) websocketWriter(client *wsClient) {
	ticker := time.NewTicker(statsInterval)
	defer ticker.Stop()

	if !a.writeStats(client.conn) {
		return
	}
	for {
		select {
		case <-ticker.C:
			if !a.writeStats(client.conn) {
				return
			}
		case packet, ok := <-client.send:
			if !ok {
				return
			}
			if !writePacket(client.conn, packet) {
				return
			}
		}
	}
}

func (a *Api) writeStats(ws *websocket.Conn) bool {
	packet, err := json.Marshal(a.Stats.Snapshot())
	if err != nil {
		return false
	}
	return writePacket(ws, packet)
}

func writePacket(ws *websocket.Conn, packet []byte) bool {
	err := ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err != nil {
		logger().Debug(fmt.Sprintf("could not set write deadline: %s", err))
		return false
	}
	return ws.WriteMessage(websocket.TextMessage, packet) == nil
}

func (a *Api) broadcast(event any) {
	packet, err := json.Marshal(event)
	if err != nil {
		logger().Error(fmt.Sprintf("could not encode event: %s", err))
		return
	}

	a.wsMutex.Lock()
	defer a.wsMutex.Unlock()
	for client := range a.wsClients {
		select {
		case client.send <- packet:
		default:
			logger().Debug("dropping event for slow websocket client")
		}
	}
}

func (a *Api) register(client *wsClient) {
	a.wsMutex.Lock()
	defer a.wsMutex.Unlock()
	a.wsClients[client] = struct{}{}
	a.clientsChanged()
}

func (a *Api) unregister(client *wsClient) {
	a.wsMutex.Lock()
	defer a.wsMutex.Unlock()
	if _, ok := a.wsClients[client]; !ok {
		return
	}
	delete(a.wsClients, client)
	close(client.send)
	a.clientsChanged()
}

func (a *Api) closeWebsockets() {
	a.wsMutex.Lock()
	defer a.wsMutex.Unlock()
	for client := range a.wsClients {
		_ = client.conn.Close()
	}
}

// must hold wsMutex
func (a *Api) clientsChanged() {
	a.Stats.SetWsClients(len(a.wsClients))
	metrics.WsClients.Set(float64(len(a.wsClients)))
}
