/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package metrics instruments the strategies of a configuration with
// Prometheus counters. Metrics.Configurator wraps whatever formatter,
// generator and validator a configuration holds at the point it runs, so it
// belongs after the configurators that choose those strategies.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/eid/apis"
)

// Render kinds used as the "kind" label of renders_total.
const (
	KindPlain   = "plain"
	KindRef     = "ref"
	KindMessage = "message"
)

// Metrics holds the counters of the instrumented strategies.
type Metrics struct {
	renders  *prometheus.CounterVec
	uniques  prometheus.Counter
	verdicts *prometheus.CounterVec
}

// New creates the counters and registers them with reg. Counters already
// registered by an earlier call are reused. A nil reg leaves them
// unregistered.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eid",
			Name:      "renders_total",
			Help:      "Eids rendered by the formatter.",
		}, []string{"kind"}),
		uniques: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "eid",
			Name:      "unique_ids_total",
			Help:      "Unique tokens drawn from the generator.",
		}),
		verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eid",
			Name:      "validations_total",
			Help:      "Ids checked by the validator.",
		}, []string{"result"}),
	}
	if reg == nil {
		return m, nil
	}

	var err error
	if m.renders, err = register(reg, m.renders); err != nil {
		return nil, err
	}
	if m.uniques, err = register(reg, m.uniques); err != nil {
		return nil, err
	}
	if m.verdicts, err = register(reg, m.verdicts); err != nil {
		return nil, err
	}
	return m, nil
}

// register registers c, or returns the collector already registered under
// the same descriptor.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Configurator returns a configurator that wraps the current strategies with
// counting decorators. Strategies wrapped by this Metrics are not wrapped
// again.
func (m *Metrics) Configurator() apis.Configurator {
	return apis.ConfiguratorFunc(func(b apis.ConfigurationBuilder) error {
		cur := b.FutureConfiguration()
		if f := cur.Formatter; f != nil && !m.owns(f) {
			b.Formatter(&formatter{next: f, m: m})
		}
		if g := cur.Generator; g != nil && !m.owns(g) {
			b.UniqueIDGenerator(&generator{next: g, m: m})
		}
		if v := cur.Validator; v != nil && !m.owns(v) {
			b.Validator(&validator{next: v, m: m})
		}
		return nil
	})
}

func (m *Metrics) owns(v any) bool {
	switch w := v.(type) {
	case *formatter:
		return w.m == m
	case *generator:
		return w.m == m
	case *validator:
		return w.m == m
	}
	return false
}

// formatter counts renders.
type formatter struct {
	next apis.Formatter
	m    *Metrics
}

func (f *formatter) Format(id apis.Identifier) string {
	kind := KindPlain
	if id.Ref() != "" {
		kind = KindRef
	}
	f.m.renders.WithLabelValues(kind).Inc()
	return f.next.Format(id)
}

func (f *formatter) FormatMessage(id apis.Identifier, message string) string {
	f.m.renders.WithLabelValues(KindMessage).Inc()
	return f.next.FormatMessage(id, message)
}

// generator counts draws.
type generator struct {
	next apis.UniqueIDGenerator
	m    *Metrics
}

func (g *generator) GenerateUniqID() string {
	g.m.uniques.Inc()
	return g.next.GenerateUniqID()
}

// validator counts verdicts.
type validator struct {
	next apis.Validator
	m    *Metrics
}

func (v *validator) IsValid(id string) bool {
	ok := v.next.IsValid(id)
	if ok {
		v.m.verdicts.WithLabelValues("valid").Inc()
	} else {
		v.m.verdicts.WithLabelValues("invalid").Inc()
	}
	return ok
}
