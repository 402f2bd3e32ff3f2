package indicator

// IndicatorSet owns a named collection of calculators and fans each
// observation out to all of them. Members are registered before first use
// and iterated in insertion order. A set is not safe for concurrent
// mutation: it belongs to exactly one update loop, and concurrent readers
// must be given copied snapshots instead of the set itself.
type IndicatorSet struct {
	names []string
	calcs map[string]Calculator
}

// NewSet creates an empty indicator set
func NewSet() *IndicatorSet {
	return &IndicatorSet{
		calcs: make(map[string]Calculator),
	}
}

// Add registers a prebuilt calculator. Re-adding an existing name fails
// fast rather than silently shadowing configuration.
func (s *IndicatorSet) Add(calc Calculator) error {
	if calc == nil {
		return invalidParamf("IndicatorSet", "calculator cannot be nil")
	}
	name := calc.Name()
	if name == "" {
		return invalidParamf("IndicatorSet", "calculator name cannot be empty")
	}
	if _, exists := s.calcs[name]; exists {
		return invalidParamf("IndicatorSet", "indicator %q already registered", name)
	}

	s.calcs[name] = calc
	s.names = append(s.names, name)
	return nil
}

// AddSMA registers a Simple Moving Average with the given period
func (s *IndicatorSet) AddSMA(period int) error {
	calc, err := NewSMA(period)
	if err != nil {
		return err
	}
	return s.Add(calc)
}

// AddEMA registers an Exponential Moving Average with the given period
func (s *IndicatorSet) AddEMA(period int) error {
	calc, err := NewEMA(period)
	if err != nil {
		return err
	}
	return s.Add(calc)
}

// AddRSI registers a Relative Strength Index with the given period
func (s *IndicatorSet) AddRSI(period int) error {
	calc, err := NewRSI(period)
	if err != nil {
		return err
	}
	return s.Add(calc)
}

// AddMACD registers a MACD with the given fast, slow and signal periods
func (s *IndicatorSet) AddMACD(fastPeriod, slowPeriod, signalPeriod int) error {
	calc, err := NewMACD(fastPeriod, slowPeriod, signalPeriod)
	if err != nil {
		return err
	}
	return s.Add(calc)
}

// AddKDJ registers a KDJ oscillator with the given RSV period and smoothing
func (s *IndicatorSet) AddKDJ(rsvPeriod, m1, m2 int) error {
	calc, err := NewKDJ(rsvPeriod, m1, m2)
	if err != nil {
		return err
	}
	return s.Add(calc)
}

// AddATR registers an Average True Range with the given period
func (s *IndicatorSet) AddATR(period int) error {
	calc, err := NewATR(period)
	if err != nil {
		return err
	}
	return s.Add(calc)
}

// AddBollinger registers Bollinger bands with the given period and multiplier
func (s *IndicatorSet) AddBollinger(period int, multiplier float64) error {
	calc, err := NewBollinger(period, multiplier)
	if err != nil {
		return err
	}
	return s.Add(calc)
}

// AddOBV registers an On-Balance Volume calculator
func (s *IndicatorSet) AddOBV() error {
	return s.Add(NewOBV())
}

// AddSAR registers a Parabolic SAR with the given step and maximum
func (s *IndicatorSet) AddSAR(step, max float64) error {
	calc, err := NewSAR(step, max)
	if err != nil {
		return err
	}
	return s.Add(calc)
}

// AddVolumeSMA registers a volume SMA with the given period
func (s *IndicatorSet) AddVolumeSMA(period int) error {
	calc, err := NewVolumeSMA(period)
	if err != nil {
		return err
	}
	return s.Add(calc)
}

// AddVWAP registers a volume weighted average price with the given period
func (s *IndicatorSet) AddVWAP(period int) error {
	calc, err := NewVWAP(period)
	if err != nil {
		return err
	}
	return s.Add(calc)
}

// AddROC registers a rate-of-change with the given period
func (s *IndicatorSet) AddROC(period int) error {
	calc, err := NewROC(period)
	if err != nil {
		return err
	}
	return s.Add(calc)
}

// AddRelativeVolume registers a relative volume with the given period
func (s *IndicatorSet) AddRelativeVolume(period int) error {
	calc, err := NewRelativeVolume(period)
	if err != nil {
		return err
	}
	return s.Add(calc)
}

// Update feeds the observation to every member and returns a best-effort
// snapshot of all ready component lines. Members still warming up are
// simply absent from the map.
func (s *IndicatorSet) Update(c Candle) map[string]float64 {
	snapshot := make(map[string]float64, len(s.names))
	for _, name := range s.names {
		calc := s.calcs[name]
		if _, err := calc.Update(c); err != nil {
			continue
		}
		calc.Collect(snapshot)
	}
	return snapshot
}

// UpdateValue feeds a bare value as a flat candle, for sets made up of
// price-only indicators.
func (s *IndicatorSet) UpdateValue(v float64) map[string]float64 {
	return s.Update(ValueCandle(v))
}

// Snapshot returns the current ready component lines without consuming an
// observation.
func (s *IndicatorSet) Snapshot() map[string]float64 {
	snapshot := make(map[string]float64, len(s.names))
	for _, name := range s.names {
		s.calcs[name].Collect(snapshot)
	}
	return snapshot
}

// Get returns the member registered under name
func (s *IndicatorSet) Get(name string) (Calculator, bool) {
	calc, ok := s.calcs[name]
	return calc, ok
}

// Names returns the member names in insertion order
func (s *IndicatorSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Size returns the number of members
func (s *IndicatorSet) Size() int {
	return len(s.names)
}

// Reset returns every member to its initial empty state
func (s *IndicatorSet) Reset() {
	for _, name := range s.names {
		s.calcs[name].Reset()
	}
}
