// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"net/http"
	"reflect"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace is prefixed before every metric. If it is changed, it must be done
// before any metrics collector is registered.
const Namespace = "logfan"

// MetricsCollector is implemented by components exposing prometheus collectors.
type MetricsCollector interface {
	Metrics() []prometheus.Collector
}

// PrometheusCollectorsFromFields returns the exported, initialized
// prometheus collectors held by the fields of the struct i points to.
func PrometheusCollectorsFromFields(i interface{}) (cs []prometheus.Collector) {
	v := reflect.Indirect(reflect.ValueOf(i))
	if v.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < v.NumField(); i++ {
		if !v.Field(i).CanInterface() {
			continue
		}
		if u, ok := v.Field(i).Interface().(prometheus.Collector); ok {
			cs = append(cs, u)
		}
	}
	return cs
}

// NewRegistry returns a registry with the process and Go runtime
// collectors and the collectors of every given component registered.
func NewRegistry(mcs ...MetricsCollector) (*prometheus.Registry, error) {
	r := prometheus.NewRegistry()

	if err := r.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
		Namespace: Namespace,
	})); err != nil {
		return nil, err
	}
	if err := r.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}

	for _, mc := range mcs {
		for _, c := range mc.Metrics() {
			if err := r.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

// Handler returns the http handler serving the metrics of g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
