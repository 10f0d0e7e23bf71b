package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quickburst"

// Metrics holds Prometheus metrics for the trivia and reminder services
type Metrics struct {
	SessionsCreated   prometheus.Counter
	GamesStarted      prometheus.Counter
	GamesFinished     prometheus.Counter
	AnswersRecorded   *prometheus.CounterVec
	QuestionsRevealed prometheus.Counter
	IntentsRejected   *prometheus.CounterVec
	ReminderOps       *prometheus.CounterVec
}

// New registers the metrics on reg. A nil reg registers nothing, which keeps tests isolated.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SessionsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "trivia",
			Name:      "sessions_created_total",
			Help:      "Total number of trivia sessions created",
		}),
		GamesStarted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "trivia",
			Name:      "games_started_total",
			Help:      "Total number of games started",
		}),
		GamesFinished: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "trivia",
			Name:      "games_finished_total",
			Help:      "Total number of games that reached the scoreboard",
		}),
		AnswersRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "trivia",
				Name:      "answers_recorded_total",
				Help:      "Total number of answers recorded",
			},
			[]string{"result"}, // correct or incorrect
		),
		QuestionsRevealed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "trivia",
			Name:      "questions_revealed_total",
			Help:      "Total number of questions scored and revealed",
		}),
		IntentsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "trivia",
				Name:      "intents_rejected_total",
				Help:      "Total number of intents rejected by the session",
			},
			[]string{"operation", "reason"},
		),
		ReminderOps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "reminders",
				Name:      "operations_total",
				Help:      "Total number of reminder operations",
			},
			[]string{"operation", "status"},
		),
	}
}

// ObserveReminderOp counts a reminder operation by outcome
func (m *Metrics) ObserveReminderOp(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.ReminderOps.WithLabelValues(operation, status).Inc()
}
