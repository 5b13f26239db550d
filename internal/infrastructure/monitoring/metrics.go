// Package monitoring expose les compteurs Prometheus de l'application et le
// serveur HTTP annexe (santé + métriques), séparé de l'API principale.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MovementsAppended nombre total d'écritures ajoutées au journal.
	MovementsAppended = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gestion_stocks_movements_appended_total",
		Help: "Nombre de mouvements ajoutés au journal.",
	})

	// PersistenceFailures nombre d'échecs de sauvegarde du snapshot.
	PersistenceFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gestion_stocks_persistence_failures_total",
		Help: "Nombre d'échecs de persistance du snapshot (état mémoire conservé).",
	})

	// Online dernier état de connectivité signalé (1 = en ligne).
	Online = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gestion_stocks_online",
		Help: "État de connectivité signalé par le collaborateur (signal d'affichage).",
	})
)
