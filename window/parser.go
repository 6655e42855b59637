package window

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parser parses view expressions of the form
//
//	cohort | fn args | fn args | ...
//
// e.g. "female | range 2 9 | CtoF". The cohort part selects the sensor
// columns; each function adds a display operator.
type Parser struct {
}

func NewParser() *Parser {
	return &Parser{}
}

func trimSpace(parts []string) []string {
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

func (p *Parser) Parse(s string) (Cohort, Operator, error) {
	if len(s) == 0 {
		return 0, nil, errors.New("empty expression")
	}

	mainParts := trimSpace(strings.Split(s, "|"))

	var cohort Cohort
	{
		cohortParts := trimSpace(strings.Fields(mainParts[0]))
		if len(cohortParts) > 1 {
			return 0, nil, errors.New("invalid cohort name")
		}
		var err error
		cohort, err = ParseCohort(cohortParts[0])
		if err != nil {
			return 0, nil, errors.Wrap(err, "parse cohort")
		}
	}

	switch len(mainParts) {
	case 1:
		return cohort, Identity{}, nil
	case 2:
		op, err := p.parseFunction(mainParts[1])
		return cohort, op, err
	default:
		op, err := p.parseChain(mainParts[1:])
		return cohort, op, err
	}
}

func (p *Parser) parseFunction(def string) (Operator, error) {
	functionParts := trimSpace(strings.Fields(def))

	if len(functionParts) == 0 {
		return nil, errors.New("invalid number of function parameters")
	}

	functionName := functionParts[0]
	switch functionName {
	case "range":
		if len(functionParts) != 3 {
			return nil, errors.New("range: invalid number of function parameters")
		}
		from, err := strconv.ParseFloat(functionParts[1], 64)
		if err != nil {
			return nil, errors.Wrap(err, "invalid float")
		}
		to, err := strconv.ParseFloat(functionParts[2], 64)
		if err != nil {
			return nil, errors.Wrap(err, "invalid float")
		}
		if to < from {
			return nil, errors.New("range: to < from")
		}
		return OpRange{From: from, To: to}, nil
	case "gt":
		if len(functionParts) != 2 {
			return nil, errors.New("gt: invalid number of function parameters")
		}
		x, err := strconv.ParseFloat(functionParts[1], 64)
		if err != nil {
			return nil, errors.Wrap(err, "invalid float")
		}
		return OpGt{X: x}, nil
	case "CtoF":
		return OpCtoF{}, nil
	case "FtoC":
		return OpFtoC{}, nil
	default:
		return nil, errors.New("unknown function name")
	}
}

func (p *Parser) parseChain(defs []string) (Operator, error) {
	var ops []Operator

	for _, def := range defs {
		op, err := p.parseFunction(def)
		if err != nil {
			return nil, errors.Wrap(err, "parse function")
		}
		ops = append(ops, op)
	}

	return chain{ops: ops}, nil
}
