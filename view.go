package thermograph

import (
	"strconv"

	"github.com/chronobio/thermograph/window"
	"github.com/pkg/errors"
)

// View is the immutable view-state for one render: cohort, display unit,
// optional time-range selection, and window size. Each interaction builds a
// new View; nothing is mutated between renders.
type View struct {
	Cohort        window.Cohort
	Fahrenheit    bool
	From          float64
	To            float64
	HasRange      bool
	WindowMinutes float64
}

func (v View) Operator() window.Operator {
	var ops []window.Operator
	if v.HasRange {
		ops = append(ops, window.OpRange{From: v.From, To: v.To})
	}
	if v.Fahrenheit {
		ops = append(ops, window.OpCtoF{})
	}

	switch len(ops) {
	case 0:
		return window.Identity{}
	case 1:
		return ops[0]
	default:
		return window.Chain(ops...)
	}
}

// queryGetter abstracts gin.Context.Query for tests.
type queryGetter interface {
	Query(key string) string
}

func viewFromQuery(q queryGetter) (View, error) {
	v := View{}

	cohort, err := window.ParseCohort(q.Query("cohort"))
	if err != nil {
		return v, err
	}
	v.Cohort = cohort

	switch q.Query("unit") {
	case "", "c":
	case "f":
		v.Fahrenheit = true
	default:
		return v, errors.Errorf("unknown unit: %s", q.Query("unit"))
	}

	from, to := q.Query("from"), q.Query("to")
	if (from == "") != (to == "") {
		return v, errors.New("from and to must be given together")
	}
	if from != "" {
		if v.From, err = strconv.ParseFloat(from, 64); err != nil {
			return v, errors.Wrap(err, "parse from")
		}
		if v.To, err = strconv.ParseFloat(to, 64); err != nil {
			return v, errors.Wrap(err, "parse to")
		}
		if v.To < v.From {
			return v, errors.New("to < from")
		}
		v.HasRange = true
	}

	if win := q.Query("win"); win != "" {
		if v.WindowMinutes, err = strconv.ParseFloat(win, 64); err != nil {
			return v, errors.Wrap(err, "parse win")
		}
		if v.WindowMinutes <= 0 {
			return v, errors.New("win must be positive")
		}
	}

	return v, nil
}
