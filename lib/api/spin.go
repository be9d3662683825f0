package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// SpinReq changes the rotation. Omitted fields are left alone.
type SpinReq struct {
	Speed  *float32 `json:"speed,omitempty" example:"90"`
	Paused *bool    `json:"paused,omitempty" example:"false"`
}

// EventSpin is broadcast to websocket clients after the rotation changed.
type EventSpin struct {
	Event  string  `json:"event"`
	Angle  float32 `json:"angle"`
	Speed  float32 `json:"speed"`
	Paused bool    `json:"paused"`
}

// @Summary	Get the current rotation
// @Router		/api/spin [get]
// @Tags		spin
// @Produce	json
// @Success	200	{object}	spin.State
func (a *Api) getSpin(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, a.spinner.State())
}

// @Summary	Change rotation speed or pause the rotation
// @Router		/api/spin [put]
// @Router		/api/spin [post]
// @Param		spinReq	body	SpinReq	true	"New rotation settings"
// @Tags		spin
// @Accept		json
// @Produce	json
// @Success	200	{object}	spin.State
// @Failure	400	{string}	string	"Could not decode json request or invalid speed"
func (a *Api) handleSpin(w http.ResponseWriter, req *http.Request) {
	var spinReq SpinReq
	err := json.NewDecoder(req.Body).Decode(&spinReq)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not decode json request: %s", err), http.StatusBadRequest)
		return
	}

	if spinReq.Speed != nil {
		err = a.spinner.SetSpeed(*spinReq.Speed)
		if err != nil {
			http.Error(w, fmt.Sprintf("could not set speed: %s", err), http.StatusBadRequest)
			return
		}
	}
	if spinReq.Paused != nil {
		a.spinner.SetPaused(*spinReq.Paused)
	}

	state := a.spinner.State()
	logger().Info(fmt.Sprintf("Rotation set to %g°/s (paused %t)", state.Speed, state.Paused))
	a.broadcast(EventSpin{
		Event:  "spin",
		Angle:  state.Angle,
		Speed:  state.Speed,
		Paused: state.Paused,
	})

	writeJSON(w, state)
}
