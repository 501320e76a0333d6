// Package server streams a recorded trajectory to websocket clients, one
// frame per sample time, paced to the simulated clock.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/san-kum/mechsim/internal/ode"
)

type Frame struct {
	Index int       `json:"index"`
	Time  float64   `json:"time"`
	State []float64 `json:"state"`
}

type runInfo struct {
	System  string  `json:"system"`
	Samples int     `json:"samples"`
	End     float64 `json:"end"`
}

type Server struct {
	addr     string
	system   string
	traj     *ode.Trajectory
	upgrader websocket.Upgrader
}

func New(addr, system string, traj *ode.Trajectory) *Server {
	return &Server{
		addr:   addr,
		system: system,
		traj:   traj,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleInfo)
	mux.HandleFunc("/ws", s.handleStream)
	return http.ListenAndServe(s.addr, mux)
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runInfo{
		System:  s.system,
		Samples: s.traj.Len(),
		End:     s.traj.Times[s.traj.Len()-1],
	})
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for i, t := range s.traj.Times {
		frame := Frame{Index: i, Time: t, State: s.traj.States[i]}
		if err := conn.WriteJSON(frame); err != nil {
			return
		}
		if i < s.traj.Len()-1 {
			dt := s.traj.Times[i+1] - t
			time.Sleep(time.Duration(dt * float64(time.Second)))
		}
	}

	deadline := time.Now().Add(time.Second)
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"), deadline)
}
