package main

import (
	"encoding/json"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/tychoish/dsa/dt"
	"github.com/tychoish/dsa/dt/cmp"
	"github.com/tychoish/dsa/ers"
	"github.com/tychoish/dsa/sorting"
)

type listResult struct {
	Forward  *dt.List[*float64] `json:"forward"`
	Backward []*float64         `json:"backward"`
}

// Run executes the configured command and writes its JSON result,
// followed by a newline, to out.
func Run(conf *viper.Viper, logger *logrus.Logger, out io.Writer) error {
	raw, err := valuesOf(conf)
	if err != nil {
		return err
	}
	values, err := parseValues(raw)
	if err != nil {
		return err
	}

	command := strings.ToLower(conf.GetString("command"))
	logger.WithFields(logrus.Fields{
		"prefix":  "dsa",
		"command": command,
		"count":   len(values),
	}).Debug("running")

	result, err := ers.WithRecoverDo(func() (any, error) {
		switch command {
		case "sort":
			return runSort(conf, logger, values)
		case "list":
			return runList(values)
		case "heap":
			return runHeap(conf, values)
		default:
			return nil, ers.InvalidInput("unknown command %q", command)
		}
	})
	if err != nil {
		return err
	}

	return json.NewEncoder(out).Encode(result)
}

func runSort(conf *viper.Viper, logger *logrus.Logger, values []*float64) ([]*float64, error) {
	algo, err := sorting.ParseAlgorithm(conf.GetString("algorithm"))
	if err != nil {
		return nil, err
	}

	natural := cmp.Natural[float64]()
	switch order := strings.ToLower(conf.GetString("order")); order {
	case "", "asc":
	case "desc":
		natural = cmp.Reverse(natural)
	default:
		return nil, ers.InvalidInput("sort order %q", order)
	}

	logger.WithFields(logrus.Fields{"prefix": "dsa", "algorithm": algo}).Debug("sorting")

	// nulls stay last in both directions.
	return sorting.Sort(values, algo, cmp.NullsLast(natural))
}

func runList(values []*float64) (*listResult, error) {
	list := dt.NewList(values...)
	list.Sort(nil)
	if !list.IsSorted(nil) {
		return nil, ers.InvalidOperation("list did not sort")
	}
	return &listResult{
		Forward:  list,
		Backward: slices.Collect(list.IteratorBack()),
	}, nil
}

func runHeap(conf *viper.Viper, values []*float64) ([]float64, error) {
	var order dt.HeapOrder
	switch o := strings.ToLower(conf.GetString("order")); o {
	case "", "min":
		order = dt.MinHeap
	case "max":
		order = dt.MaxHeap
	default:
		return nil, ers.InvalidInput("heap order %q", o)
	}

	heap := dt.NewHeap(order, cmp.Natural[float64]())
	for _, v := range values {
		if v == nil {
			return nil, ers.ArgumentNull("values")
		}
		heap.Push(*v)
	}

	return append(make([]float64, 0, heap.Len()), slices.Collect(heap.IteratorPop())...), nil
}

// parseValues splits the input on commas and whitespace. The token
// null, in any case, produces a nil value.
func parseValues(in string) ([]*float64, error) {
	fields := strings.FieldsFunc(in, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	out := make([]*float64, 0, len(fields))
	for _, field := range fields {
		if strings.EqualFold(field, "null") {
			out = append(out, nil)
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, ers.InvalidInput("value %q is not a number", field)
		}
		out = append(out, &v)
	}
	return out, nil
}
