package indicator

import (
	"strconv"
	"strings"
)

// Kind identifies an indicator family in textual configuration.
type Kind string

// Supported indicator kinds.
const (
	KindSMA   Kind = "SMA"
	KindEMA   Kind = "EMA"
	KindRSI   Kind = "RSI"
	KindMACD  Kind = "MACD"
	KindKDJ   Kind = "KDJ"
	KindATR   Kind = "ATR"
	KindBOLL  Kind = "BOLL"
	KindOBV   Kind = "OBV"
	KindSAR   Kind = "SAR"
	KindVOLMA Kind = "VOLMA"
	KindVWAP  Kind = "VWAP"
	KindROC   Kind = "ROC"
	KindRVOL  Kind = "RVOL"
)

// Spec is a parsed indicator configuration. Its string form is the stable
// colon-separated representation used by environment configuration and
// persisted strategy definitions, e.g. "MACD:12:26:9" or "BOLL:20:2".
// Which fields are meaningful depends on Kind; Build validates eagerly.
type Spec struct {
	Kind Kind

	// Period is the window for SMA, EMA, RSI, ATR, BOLL, VOLMA, VWAP, ROC
	// and RVOL, and the RSV period for KDJ.
	Period int

	// MACD periods.
	Fast   int
	Slow   int
	Signal int

	// KDJ smoothing factors.
	SmoothK int
	SmoothD int

	// Bollinger standard deviation multiplier.
	Multiplier float64

	// SAR acceleration parameters.
	Step float64
	Max  float64
}

// ParseSpec parses the colon-separated form, e.g. "SMA:20", "KDJ:9:3:3",
// "SAR:0.02:0.2" or "OBV". The kind is case-insensitive.
func ParseSpec(s string) (Spec, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	kind := Kind(strings.ToUpper(strings.TrimSpace(parts[0])))
	args := parts[1:]

	switch kind {
	case KindSMA, KindEMA, KindRSI, KindATR, KindVOLMA, KindVWAP, KindROC, KindRVOL:
		period, err := specInts(kind, args, 1)
		if err != nil {
			return Spec{}, err
		}
		return Spec{Kind: kind, Period: period[0]}, nil

	case KindMACD:
		periods, err := specInts(kind, args, 3)
		if err != nil {
			return Spec{}, err
		}
		return Spec{Kind: kind, Fast: periods[0], Slow: periods[1], Signal: periods[2]}, nil

	case KindKDJ:
		periods, err := specInts(kind, args, 3)
		if err != nil {
			return Spec{}, err
		}
		return Spec{Kind: kind, Period: periods[0], SmoothK: periods[1], SmoothD: periods[2]}, nil

	case KindBOLL:
		if len(args) != 2 {
			return Spec{}, invalidParamf(string(kind), "expected 2 parameters, got %d", len(args))
		}
		period, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil {
			return Spec{}, invalidParamf(string(kind), "period %q is not an integer", args[0])
		}
		mult, err := specFloat(kind, args[1])
		if err != nil {
			return Spec{}, err
		}
		return Spec{Kind: kind, Period: period, Multiplier: mult}, nil

	case KindOBV:
		if len(args) != 0 {
			return Spec{}, invalidParamf(string(kind), "expected no parameters, got %d", len(args))
		}
		return Spec{Kind: kind}, nil

	case KindSAR:
		if len(args) != 2 {
			return Spec{}, invalidParamf(string(kind), "expected 2 parameters, got %d", len(args))
		}
		step, err := specFloat(kind, args[0])
		if err != nil {
			return Spec{}, err
		}
		max, err := specFloat(kind, args[1])
		if err != nil {
			return Spec{}, err
		}
		return Spec{Kind: kind, Step: step, Max: max}, nil

	default:
		return Spec{}, invalidParamf("Spec", "unknown indicator kind %q", parts[0])
	}
}

func specInts(kind Kind, args []string, want int) ([]int, error) {
	if len(args) != want {
		return nil, invalidParamf(string(kind), "expected %d parameters, got %d", want, len(args))
	}
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, invalidParamf(string(kind), "parameter %q is not an integer", a)
		}
		out[i] = v
	}
	return out, nil
}

func specFloat(kind Kind, arg string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return 0, invalidParamf(string(kind), "parameter %q is not a number", arg)
	}
	return v, nil
}

// String returns the canonical colon-separated form of the spec.
func (s Spec) String() string {
	switch s.Kind {
	case KindMACD:
		return strings.Join([]string{string(s.Kind),
			strconv.Itoa(s.Fast), strconv.Itoa(s.Slow), strconv.Itoa(s.Signal)}, ":")
	case KindKDJ:
		return strings.Join([]string{string(s.Kind),
			strconv.Itoa(s.Period), strconv.Itoa(s.SmoothK), strconv.Itoa(s.SmoothD)}, ":")
	case KindBOLL:
		return string(s.Kind) + ":" + strconv.Itoa(s.Period) + ":" +
			strconv.FormatFloat(s.Multiplier, 'g', -1, 64)
	case KindOBV:
		return string(s.Kind)
	case KindSAR:
		return string(s.Kind) + ":" +
			strconv.FormatFloat(s.Step, 'g', -1, 64) + ":" +
			strconv.FormatFloat(s.Max, 'g', -1, 64)
	default:
		return string(s.Kind) + ":" + strconv.Itoa(s.Period)
	}
}

// Build constructs a calculator from the spec, validating parameters.
func (s Spec) Build() (Calculator, error) {
	switch s.Kind {
	case KindSMA:
		return NewSMA(s.Period)
	case KindEMA:
		return NewEMA(s.Period)
	case KindRSI:
		return NewRSI(s.Period)
	case KindMACD:
		return NewMACD(s.Fast, s.Slow, s.Signal)
	case KindKDJ:
		return NewKDJ(s.Period, s.SmoothK, s.SmoothD)
	case KindATR:
		return NewATR(s.Period)
	case KindBOLL:
		return NewBollinger(s.Period, s.Multiplier)
	case KindOBV:
		return NewOBV(), nil
	case KindSAR:
		return NewSAR(s.Step, s.Max)
	case KindVOLMA:
		return NewVolumeSMA(s.Period)
	case KindVWAP:
		return NewVWAP(s.Period)
	case KindROC:
		return NewROC(s.Period)
	case KindRVOL:
		return NewRelativeVolume(s.Period)
	default:
		return nil, invalidParamf("Spec", "unknown indicator kind %q", s.Kind)
	}
}

// BuildSet constructs an IndicatorSet from a list of specs. Duplicate
// resulting names are rejected, matching IndicatorSet.Add.
func BuildSet(specs []Spec) (*IndicatorSet, error) {
	set := NewSet()
	for _, spec := range specs {
		calc, err := spec.Build()
		if err != nil {
			return nil, err
		}
		if err := set.Add(calc); err != nil {
			return nil, err
		}
	}
	return set, nil
}
