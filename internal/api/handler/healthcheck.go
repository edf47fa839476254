package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// SessionCounter expõe o número de sessões ativas
type SessionCounter interface {
	Count() int
}

func HealthcheckHandler(sessions SessionCounter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}
		if sessions != nil {
			status["active_sessions"] = sessions.Count()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
