package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_requests_total",
		Help: "Общее количество запросов к dispatch API",
	}, []string{"endpoint", "code"})

	requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "traffic_request_duration_seconds",
		Help:    "Длительность запроса в секундах",
		Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 2},
	})
)

var priorities = []string{"low", "medium", "medium", "high", "emergency"}

const deliveryTemplate = `{
	"pickup": {"address": "Warehouse %d", "coordinates": [37.%d, 55.%d]},
	"dropoff": {"address": "Street %d", "coordinates": [37.%d, 55.%d]},
	"product_details": "Parcel %d",
	"priority": "%s"
}`

func createDelivery(baseURL, token string) {
	start := time.Now()
	defer func() {
		requestDuration.Observe(time.Since(start).Seconds())
	}()

	n := rand.Intn(1000)
	body := fmt.Sprintf(deliveryTemplate,
		n, rand.Intn(99), rand.Intn(99),
		n, rand.Intn(99), rand.Intn(99),
		n, priorities[rand.Intn(len(priorities))],
	)

	req, err := http.NewRequest(http.MethodPost, baseURL+"/delivery", bytes.NewReader([]byte(body)))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues("delivery_post", "error").Inc()
		return
	}
	defer resp.Body.Close()

	requestsTotal.WithLabelValues("delivery_post", fmt.Sprint(resp.StatusCode)).Inc()
}

func listPending(baseURL, token string) {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/deliveries/pending?limit=20", nil)
	if err != nil {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues("deliveries_pending_get", "error").Inc()
		return
	}
	defer resp.Body.Close()

	requestsTotal.WithLabelValues("deliveries_pending_get", fmt.Sprint(resp.StatusCode)).Inc()
}

func main() {
	rand.Seed(time.Now().UnixNano())

	baseURL := os.Getenv("DISPATCH_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":2112", nil)

	clientToken := fmt.Sprintf("client:load-%d", rand.Intn(100))
	operatorToken := "operator:load-op"

	for {
		createDelivery(baseURL, clientToken)
		if rand.Intn(4) == 0 {
			listPending(baseURL, operatorToken)
		}
		time.Sleep(time.Duration(200+rand.Intn(1800)) * time.Millisecond)
	}
}
