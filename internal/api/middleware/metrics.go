package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
)

// statusRecorder перехватывает статус-код ответа
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware записывает количество и длительность HTTP-запросов.
// В качестве label path используется шаблон роута
// (/api/v1/tenants/{tenantId}/available-slots), а не конкретный URL,
// чтобы не раздувать кардинальность метрик.
func MetricsMiddleware(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			path := routeTemplate(r)
			m.IncHTTPRequest(r.Method, path, recorder.status)
			m.ObserveHTTPRequestDuration(r.Method, path, time.Since(start).Seconds())
		})
	}
}

// routeTemplate возвращает шаблон роута или сырой путь, если роут не определен
func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return r.URL.Path
	}
	if tpl, err := route.GetPathTemplate(); err == nil {
		return tpl
	}
	return r.URL.Path
}
