/*
 * Copyright 2025 InfAI (CC SES)
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package reportobello

import (
	"context"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "reportobello_client_requests_total",
	Help: "Total number of requests sent to the reportobello api, by operation and response status",
}, []string{"operation", "status"})

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "reportobello_client_request_duration_seconds",
	Help:    "Duration of requests sent to the reportobello api",
	Buckets: prometheus.DefBuckets,
}, []string{"operation"})

type operationKey struct{}

func withOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, operationKey{}, operation)
}

func operationOf(ctx context.Context) string {
	if ctx == nil {
		return "unknown"
	}
	if op, ok := ctx.Value(operationKey{}).(string); ok {
		return op
	}
	return "unknown"
}

func instrument(client *resty.Client) {
	client.OnAfterResponse(func(_ *resty.Client, response *resty.Response) error {
		operation := operationOf(response.Request.Context())
		requestsCounter.WithLabelValues(operation, strconv.Itoa(response.StatusCode())).Inc()
		requestDuration.WithLabelValues(operation).Observe(response.Time().Seconds())
		return nil
	})
	client.OnError(func(request *resty.Request, _ error) {
		requestsCounter.WithLabelValues(operationOf(request.Context()), "error").Inc()
	})
}
