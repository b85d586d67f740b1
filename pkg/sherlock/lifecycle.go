package sherlock

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Thermal profile step types.
const (
	StepRamp = "RAMP"
	StepHold = "HOLD"
)

// LifePhase describes a new phase of a project's life cycle.
type LifePhase struct {
	Project     string
	Phase       string
	Description string
	Duration    float64
	// DurationUnits is e.g. "sec", "min", "hr", "day", "year".
	DurationUnits string
	NumOfCycles   float64
	// CycleType is e.g. "COUNT", "DUTY CYCLE", "PER YEAR".
	CycleType string
}

// RandomVibeEvent describes a random vibration event within a phase.
type RandomVibeEvent struct {
	Project       string
	Phase         string
	Event         string
	Description   string
	Duration      float64
	DurationUnits string
	NumOfCycles   float64
	CycleType     string
	// Orientation of the PCB as "azimuth,elevation" in degrees.
	Orientation string
	// ProfileType is e.g. "Uniaxial".
	ProfileType string
	// LoadDirection as "x,y,z"; at least one coordinate must be non-zero.
	LoadDirection string
}

// RandomVibeEntry is one point of a random vibe profile.
type RandomVibeEntry struct {
	Freq float64
	Ampl float64
}

// RandomVibeProfile describes a random vibe profile for an event.
type RandomVibeProfile struct {
	Project   string
	Phase     string
	Event     string
	Profile   string
	FreqUnits string
	AmplUnits string
	Entries   []RandomVibeEntry
}

// ThermalEvent describes a thermal event within a phase.
type ThermalEvent struct {
	Project     string
	Phase       string
	Event       string
	Description string
	NumOfCycles float64
	CycleType   string
	// CycleState is e.g. "OPERATING" or "STORAGE".
	CycleState string
}

// ThermalEntry is one step of a thermal profile.
type ThermalEntry struct {
	Step string
	// Type is StepRamp or StepHold.
	Type string
	Time float64
	Temp float64
}

// ThermalProfile describes a thermal profile for an event.
type ThermalProfile struct {
	Project   string
	Phase     string
	Event     string
	Profile   string
	TimeUnits string
	TempUnits string
	Entries   []ThermalEntry
}

// HarmonicEvent describes a harmonic vibration event within a phase.
type HarmonicEvent struct {
	Project       string
	Phase         string
	Event         string
	Description   string
	Duration      float64
	DurationUnits string
	NumOfCycles   float64
	CycleType     string
	SweepRate     float64
	Orientation   string
	// ProfileType is "Uniaxial" or "Triaxial".
	ProfileType   string
	LoadDirection string
}

// HarmonicEntry is one point of a harmonic profile.
type HarmonicEntry struct {
	Freq float64
	Load float64
}

// HarmonicProfile describes a harmonic profile for an event.
type HarmonicProfile struct {
	Project   string
	Phase     string
	Event     string
	Profile   string
	FreqUnits string
	LoadUnits string
	// TriaxialAxis names the axis this profile applies to ("x", "y", or
	// "z") when the event's profile type is Triaxial; blank otherwise.
	TriaxialAxis string
	Entries      []HarmonicEntry
}

// ShockEvent describes a mechanical shock event within a phase.
type ShockEvent struct {
	Project       string
	Phase         string
	Event         string
	Description   string
	Duration      float64
	DurationUnits string
	NumOfCycles   float64
	CycleType     string
	Orientation   string
	LoadDirection string
}

// ShockEntry is one pulse of a shock profile.
type ShockEntry struct {
	// Shape is a pulse shape from the server's list, e.g. "HalfSine".
	Shape string
	Load  float64
	Freq  float64
	Decay float64
}

// ShockProfile describes a shock profile for an event.
type ShockProfile struct {
	Project         string
	Phase           string
	Event           string
	Profile         string
	Duration        float64
	DurationUnits   string
	SampleRate      float64
	SampleRateUnits string
	LoadUnits       string
	FreqUnits       string
	Entries         []ShockEntry
}

// LifecycleService manages life cycle phases, events, and load profiles.
//
// Enumerated arguments (duration units, cycle types, profile types, pulse
// shapes) are validated against lists fetched from the server. Each list
// is fetched at most once per client; if a list cannot be fetched, its
// membership check is skipped and the server has the final say.
type LifecycleService struct {
	c *Client

	mu                   sync.Mutex
	durationUnits        []string
	cycleTypes           []string
	cycleStates          []string
	randomProfileTypes   []string
	harmonicProfileTypes []string
	freqUnits            []string
	amplUnits            []string
	tempUnits            []string
	shockLoadUnits       []string
	shockPulses          []string
}

// cachedList memoizes one server-provided list under s.mu.
func (s *LifecycleService) cachedList(ctx context.Context, cache *[]string, method, field string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if *cache == nil {
		*cache = s.c.fetchList(ctx, lifeCycleService, method, field)
	}
	return *cache
}

func (s *LifecycleService) durationUnitList(ctx context.Context) []string {
	return s.cachedList(ctx, &s.durationUnits, "listDurationUnits", "durationUnits")
}

func (s *LifecycleService) cycleTypeList(ctx context.Context) []string {
	return s.cachedList(ctx, &s.cycleTypes, "listLifeCycleTypes", "types")
}

func (s *LifecycleService) cycleStateList(ctx context.Context) []string {
	return s.cachedList(ctx, &s.cycleStates, "listLifeCycleStates", "states")
}

func (s *LifecycleService) randomProfileTypeList(ctx context.Context) []string {
	return s.cachedList(ctx, &s.randomProfileTypes, "listRandomProfileTypes", "types")
}

func (s *LifecycleService) harmonicProfileTypeList(ctx context.Context) []string {
	return s.cachedList(ctx, &s.harmonicProfileTypes, "listHarmonicProfileTypes", "types")
}

func (s *LifecycleService) freqUnitList(ctx context.Context) []string {
	return s.cachedList(ctx, &s.freqUnits, "listFreqUnits", "freqUnits")
}

func (s *LifecycleService) amplUnitList(ctx context.Context) []string {
	return s.cachedList(ctx, &s.amplUnits, "listAmplUnits", "amplUnits")
}

func (s *LifecycleService) tempUnitList(ctx context.Context) []string {
	return s.cachedList(ctx, &s.tempUnits, "listTempUnits", "tempUnits")
}

func (s *LifecycleService) shockLoadUnitList(ctx context.Context) []string {
	return s.cachedList(ctx, &s.shockLoadUnits, "listShockLoadUnits", "units")
}

func (s *LifecycleService) shockPulseList(ctx context.Context) []string {
	return s.cachedList(ctx, &s.shockPulses, "listShockPulses", "shockPulse")
}

// checkMember validates v against a server-provided list, skipping the
// check when the list is unavailable.
func checkMember(op string, list []string, v, what string) error {
	if list != nil && !contains(list, v) {
		return &ArgumentError{Op: op, Message: "invalid " + what + " specified"}
	}
	return nil
}

// checkLoadDirection validates an "x,y,z" load direction.
func checkLoadDirection(op, dir string) error {
	parts := strings.Split(dir, ",")
	if len(parts) != 3 {
		return &ArgumentError{Op: op, Message: "invalid load direction: number of spatial coordinates must be 3"}
	}
	nonZero := false
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return &ArgumentError{Op: op, Message: "invalid load direction: invalid direction coordinate"}
		}
		if v != 0 {
			nonZero = true
		}
	}
	if !nonZero {
		return &ArgumentError{Op: op, Message: "invalid load direction: at least one direction coordinate must be non-zero"}
	}
	return nil
}

// checkOrientation validates an "azimuth,elevation" orientation.
func checkOrientation(op, orient string) error {
	parts := strings.Split(orient, ",")
	if len(parts) != 2 {
		return &ArgumentError{Op: op, Message: "invalid orientation: number of spherical coordinates must be 2"}
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return &ArgumentError{Op: op, Message: "invalid orientation: invalid azimuth value"}
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return &ArgumentError{Op: op, Message: "invalid orientation: invalid elevation value"}
	}
	return nil
}

// checkEventBase validates the fields shared by every event type.
func (s *LifecycleService) checkEventBase(op, project, phase, event string) error {
	switch {
	case project == "":
		return &ArgumentError{Op: op, Message: "project name is blank"}
	case phase == "":
		return &ArgumentError{Op: op, Message: "phase name is blank"}
	case event == "":
		return &ArgumentError{Op: op, Message: "event name is blank"}
	}
	return nil
}

// CreateLifePhase adds a life phase to a project's life cycle.
func (s *LifecycleService) CreateLifePhase(ctx context.Context, p LifePhase) error {
	const op = "create life phase"
	switch {
	case p.Project == "":
		return &ArgumentError{Op: op, Message: "project name is blank"}
	case p.Phase == "":
		return &ArgumentError{Op: op, Message: "phase name is blank"}
	case p.Duration <= 0:
		return &ArgumentError{Op: op, Message: "duration must be greater than 0"}
	case p.NumOfCycles <= 0:
		return &ArgumentError{Op: op, Message: "number of cycles must be greater than 0"}
	}
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	if err := checkMember(op, s.durationUnitList(ctx), p.DurationUnits, "duration unit"); err != nil {
		return err
	}
	if err := checkMember(op, s.cycleTypeList(ctx), p.CycleType, "cycle type"); err != nil {
		return err
	}
	var resp opResponse
	fields := map[string]any{
		"project":       p.Project,
		"phaseName":     p.Phase,
		"description":   p.Description,
		"duration":      p.Duration,
		"durationUnits": p.DurationUnits,
		"numOfCycles":   p.NumOfCycles,
		"cycleType":     p.CycleType,
	}
	if err := s.c.invoke(ctx, op, lifeCycleService, "createLifePhase", fields, &resp); err != nil {
		return err
	}
	return s.c.finish(op, resp.ReturnCode, resp.Errors)
}

// AddRandomVibeEvent adds a random vibration event to a life phase.
func (s *LifecycleService) AddRandomVibeEvent(ctx context.Context, e RandomVibeEvent) error {
	const op = "add random vibe event"
	if err := s.checkEventBase(op, e.Project, e.Phase, e.Event); err != nil {
		return err
	}
	switch {
	case e.Duration <= 0:
		return &ArgumentError{Op: op, Message: "duration must be greater than 0"}
	case e.NumOfCycles <= 0:
		return &ArgumentError{Op: op, Message: "number of cycles must be greater than 0"}
	}
	if err := checkOrientation(op, e.Orientation); err != nil {
		return err
	}
	if err := checkLoadDirection(op, e.LoadDirection); err != nil {
		return err
	}
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	if err := checkMember(op, s.durationUnitList(ctx), e.DurationUnits, "duration unit"); err != nil {
		return err
	}
	if err := checkMember(op, s.cycleTypeList(ctx), e.CycleType, "cycle type"); err != nil {
		return err
	}
	if err := checkMember(op, s.randomProfileTypeList(ctx), e.ProfileType, "profile type"); err != nil {
		return err
	}
	var resp opResponse
	fields := map[string]any{
		"project":       e.Project,
		"phaseName":     e.Phase,
		"eventName":     e.Event,
		"description":   e.Description,
		"duration":      e.Duration,
		"durationUnits": e.DurationUnits,
		"numOfCycles":   e.NumOfCycles,
		"cycleType":     e.CycleType,
		"orientation":   e.Orientation,
		"profileType":   e.ProfileType,
		"loadDirection": e.LoadDirection,
	}
	if err := s.c.invoke(ctx, op, lifeCycleService, "addRandomVibeEvent", fields, &resp); err != nil {
		return err
	}
	return s.c.finish(op, resp.ReturnCode, resp.Errors)
}

// AddRandomVibeProfile adds a random vibe profile to an event.
func (s *LifecycleService) AddRandomVibeProfile(ctx context.Context, p RandomVibeProfile) error {
	const op = "add random vibe profile"
	if err := s.checkEventBase(op, p.Project, p.Phase, p.Event); err != nil {
		return err
	}
	if p.Profile == "" {
		return &ArgumentError{Op: op, Message: "profile name is blank"}
	}
	for i, e := range p.Entries {
		if e.Freq <= 0 {
			return &ArgumentError{Op: op, Message: fmt.Sprintf("invalid entry %d: frequency must be greater than 0", i)}
		}
		if e.Ampl <= 0 {
			return &ArgumentError{Op: op, Message: fmt.Sprintf("invalid entry %d: amplitude must be greater than 0", i)}
		}
	}
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	if err := checkMember(op, s.freqUnitList(ctx), p.FreqUnits, "frequency unit"); err != nil {
		return err
	}
	if err := checkMember(op, s.amplUnitList(ctx), p.AmplUnits, "amplitude unit"); err != nil {
		return err
	}
	entries := make([]map[string]any, 0, len(p.Entries))
	for _, e := range p.Entries {
		entries = append(entries, map[string]any{"freq": e.Freq, "ampl": e.Ampl})
	}
	var resp opResponse
	fields := map[string]any{
		"project":                  p.Project,
		"phaseName":                p.Phase,
		"eventName":                p.Event,
		"profileName":              p.Profile,
		"freqUnits":                p.FreqUnits,
		"amplUnits":                p.AmplUnits,
		"randomVibeProfileEntries": entries,
	}
	if err := s.c.invoke(ctx, op, lifeCycleService, "addRandomVibeProfile", fields, &resp); err != nil {
		return err
	}
	return s.c.finish(op, resp.ReturnCode, resp.Errors)
}

// AddThermalEvent adds a thermal event to a life phase.
func (s *LifecycleService) AddThermalEvent(ctx context.Context, e ThermalEvent) error {
	const op = "add thermal event"
	if err := s.checkEventBase(op, e.Project, e.Phase, e.Event); err != nil {
		return err
	}
	if e.NumOfCycles <= 0 {
		return &ArgumentError{Op: op, Message: "number of cycles must be greater than 0"}
	}
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	if err := checkMember(op, s.cycleTypeList(ctx), e.CycleType, "cycle type"); err != nil {
		return err
	}
	if err := checkMember(op, s.cycleStateList(ctx), e.CycleState, "cycle state"); err != nil {
		return err
	}
	var resp opResponse
	fields := map[string]any{
		"project":     e.Project,
		"phaseName":   e.Phase,
		"eventName":   e.Event,
		"description": e.Description,
		"numOfCycles": e.NumOfCycles,
		"cycleType":   e.CycleType,
		"cycleState":  e.CycleState,
	}
	if err := s.c.invoke(ctx, op, lifeCycleService, "addThermalEvent", fields, &resp); err != nil {
		return err
	}
	return s.c.finish(op, resp.ReturnCode, resp.Errors)
}

// AddThermalProfile adds a thermal profile to an event.
func (s *LifecycleService) AddThermalProfile(ctx context.Context, p ThermalProfile) error {
	const op = "add thermal profile"
	if err := s.checkEventBase(op, p.Project, p.Phase, p.Event); err != nil {
		return err
	}
	if p.Profile == "" {
		return &ArgumentError{Op: op, Message: "profile name is blank"}
	}
	for i, e := range p.Entries {
		if e.Step == "" {
			return &ArgumentError{Op: op, Message: fmt.Sprintf("invalid entry %d: step name is blank", i)}
		}
		if e.Type != StepRamp && e.Type != StepHold {
			return &ArgumentError{Op: op, Message: fmt.Sprintf("invalid entry %d: step type must be %q or %q", i, StepRamp, StepHold)}
		}
		if e.Time <= 0 {
			return &ArgumentError{Op: op, Message: fmt.Sprintf("invalid entry %d: time must be greater than 0", i)}
		}
	}
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	if err := checkMember(op, s.durationUnitList(ctx), p.TimeUnits, "time unit"); err != nil {
		return err
	}
	if err := checkMember(op, s.tempUnitList(ctx), p.TempUnits, "temperature unit"); err != nil {
		return err
	}
	entries := make([]map[string]any, 0, len(p.Entries))
	for _, e := range p.Entries {
		entries = append(entries, map[string]any{
			"step": e.Step,
			"type": e.Type,
			"time": e.Time,
			"temp": e.Temp,
		})
	}
	var resp opResponse
	fields := map[string]any{
		"project":               p.Project,
		"phaseName":             p.Phase,
		"eventName":             p.Event,
		"profileName":           p.Profile,
		"timeUnits":             p.TimeUnits,
		"tempUnits":             p.TempUnits,
		"thermalProfileEntries": entries,
	}
	if err := s.c.invoke(ctx, op, lifeCycleService, "addThermalProfile", fields, &resp); err != nil {
		return err
	}
	return s.c.finish(op, resp.ReturnCode, resp.Errors)
}

// AddHarmonicEvent adds a harmonic vibration event to a life phase.
func (s *LifecycleService) AddHarmonicEvent(ctx context.Context, e HarmonicEvent) error {
	const op = "add harmonic event"
	if err := s.checkEventBase(op, e.Project, e.Phase, e.Event); err != nil {
		return err
	}
	switch {
	case e.Duration <= 0:
		return &ArgumentError{Op: op, Message: "duration must be greater than 0"}
	case e.NumOfCycles <= 0:
		return &ArgumentError{Op: op, Message: "number of cycles must be greater than 0"}
	case e.SweepRate <= 0:
		return &ArgumentError{Op: op, Message: "sweep rate must be greater than 0"}
	}
	if err := checkOrientation(op, e.Orientation); err != nil {
		return err
	}
	if err := checkLoadDirection(op, e.LoadDirection); err != nil {
		return err
	}
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	if err := checkMember(op, s.durationUnitList(ctx), e.DurationUnits, "duration unit"); err != nil {
		return err
	}
	if err := checkMember(op, s.cycleTypeList(ctx), e.CycleType, "cycle type"); err != nil {
		return err
	}
	if err := checkMember(op, s.harmonicProfileTypeList(ctx), e.ProfileType, "profile type"); err != nil {
		return err
	}
	var resp opResponse
	fields := map[string]any{
		"project":       e.Project,
		"phaseName":     e.Phase,
		"eventName":     e.Event,
		"description":   e.Description,
		"duration":      e.Duration,
		"durationUnits": e.DurationUnits,
		"numOfCycles":   e.NumOfCycles,
		"cycleType":     e.CycleType,
		"sweepRate":     e.SweepRate,
		"orientation":   e.Orientation,
		"profileType":   e.ProfileType,
		"loadDirection": e.LoadDirection,
	}
	if err := s.c.invoke(ctx, op, lifeCycleService, "addHarmonicEvent", fields, &resp); err != nil {
		return err
	}
	return s.c.finish(op, resp.ReturnCode, resp.Errors)
}

// AddHarmonicProfile adds a harmonic profile to an event. For events with
// a Triaxial profile type, TriaxialAxis selects the axis the profile
// applies to.
func (s *LifecycleService) AddHarmonicProfile(ctx context.Context, p HarmonicProfile) error {
	const op = "add harmonic profile"
	if err := s.checkEventBase(op, p.Project, p.Phase, p.Event); err != nil {
		return err
	}
	if p.Profile == "" {
		return &ArgumentError{Op: op, Message: "profile name is blank"}
	}
	switch p.TriaxialAxis {
	case "", "x", "y", "z":
	default:
		return &ArgumentError{Op: op, Message: "invalid triaxial axis specified"}
	}
	for i, e := range p.Entries {
		if e.Freq <= 0 {
			return &ArgumentError{Op: op, Message: fmt.Sprintf("invalid entry %d: frequency must be greater than 0", i)}
		}
		if e.Load <= 0 {
			return &ArgumentError{Op: op, Message: fmt.Sprintf("invalid entry %d: load must be greater than 0", i)}
		}
	}
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	if err := checkMember(op, s.freqUnitList(ctx), p.FreqUnits, "frequency unit"); err != nil {
		return err
	}
	if err := checkMember(op, s.shockLoadUnitList(ctx), p.LoadUnits, "load unit"); err != nil {
		return err
	}
	entries := make([]map[string]any, 0, len(p.Entries))
	for _, e := range p.Entries {
		entries = append(entries, map[string]any{"freq": e.Freq, "load": e.Load})
	}
	var resp opResponse
	fields := map[string]any{
		"project":                p.Project,
		"phaseName":              p.Phase,
		"eventName":              p.Event,
		"profileName":            p.Profile,
		"freqUnits":              p.FreqUnits,
		"loadUnits":              p.LoadUnits,
		"harmonicProfileEntries": entries,
		"triaxialAxis":           p.TriaxialAxis,
	}
	if err := s.c.invoke(ctx, op, lifeCycleService, "addHarmonicProfile", fields, &resp); err != nil {
		return err
	}
	return s.c.finish(op, resp.ReturnCode, resp.Errors)
}

// AddShockEvent adds a mechanical shock event to a life phase.
func (s *LifecycleService) AddShockEvent(ctx context.Context, e ShockEvent) error {
	const op = "add shock event"
	if err := s.checkEventBase(op, e.Project, e.Phase, e.Event); err != nil {
		return err
	}
	switch {
	case e.Duration <= 0:
		return &ArgumentError{Op: op, Message: "duration must be greater than 0"}
	case e.NumOfCycles <= 0:
		return &ArgumentError{Op: op, Message: "number of cycles must be greater than 0"}
	}
	if err := checkOrientation(op, e.Orientation); err != nil {
		return err
	}
	if err := checkLoadDirection(op, e.LoadDirection); err != nil {
		return err
	}
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	if err := checkMember(op, s.durationUnitList(ctx), e.DurationUnits, "duration unit"); err != nil {
		return err
	}
	if err := checkMember(op, s.cycleTypeList(ctx), e.CycleType, "cycle type"); err != nil {
		return err
	}
	var resp opResponse
	fields := map[string]any{
		"project":       e.Project,
		"phaseName":     e.Phase,
		"eventName":     e.Event,
		"description":   e.Description,
		"duration":      e.Duration,
		"durationUnits": e.DurationUnits,
		"numOfCycles":   e.NumOfCycles,
		"cycleType":     e.CycleType,
		"orientation":   e.Orientation,
		"loadDirection": e.LoadDirection,
	}
	if err := s.c.invoke(ctx, op, lifeCycleService, "addShockEvent", fields, &resp); err != nil {
		return err
	}
	return s.c.finish(op, resp.ReturnCode, resp.Errors)
}

// AddShockProfile adds a shock profile to an event.
func (s *LifecycleService) AddShockProfile(ctx context.Context, p ShockProfile) error {
	const op = "add shock profile"
	if err := s.checkEventBase(op, p.Project, p.Phase, p.Event); err != nil {
		return err
	}
	switch {
	case p.Profile == "":
		return &ArgumentError{Op: op, Message: "profile name is blank"}
	case p.Duration <= 0:
		return &ArgumentError{Op: op, Message: "duration must be greater than 0"}
	case p.SampleRate <= 0:
		return &ArgumentError{Op: op, Message: "sample rate must be greater than 0"}
	}
	for i, e := range p.Entries {
		if e.Load <= 0 {
			return &ArgumentError{Op: op, Message: fmt.Sprintf("invalid entry %d: load must be greater than 0", i)}
		}
		if e.Freq <= 0 {
			return &ArgumentError{Op: op, Message: fmt.Sprintf("invalid entry %d: frequency must be greater than 0", i)}
		}
		if e.Decay < 0 {
			return &ArgumentError{Op: op, Message: fmt.Sprintf("invalid entry %d: decay must not be negative", i)}
		}
	}
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	if err := checkMember(op, s.durationUnitList(ctx), p.DurationUnits, "duration unit"); err != nil {
		return err
	}
	if err := checkMember(op, s.durationUnitList(ctx), p.SampleRateUnits, "sample rate unit"); err != nil {
		return err
	}
	if err := checkMember(op, s.shockLoadUnitList(ctx), p.LoadUnits, "load unit"); err != nil {
		return err
	}
	if err := checkMember(op, s.freqUnitList(ctx), p.FreqUnits, "frequency unit"); err != nil {
		return err
	}
	pulses := s.shockPulseList(ctx)
	for i, e := range p.Entries {
		if pulses != nil && !contains(pulses, e.Shape) {
			return &ArgumentError{Op: op, Message: fmt.Sprintf("invalid entry %d: invalid pulse shape specified", i)}
		}
	}
	entries := make([]map[string]any, 0, len(p.Entries))
	for _, e := range p.Entries {
		entries = append(entries, map[string]any{
			"shape": e.Shape,
			"load":  e.Load,
			"freq":  e.Freq,
			"decay": e.Decay,
		})
	}
	var resp opResponse
	fields := map[string]any{
		"project":             p.Project,
		"phaseName":           p.Phase,
		"eventName":           p.Event,
		"profileName":         p.Profile,
		"duration":            p.Duration,
		"durationUnits":       p.DurationUnits,
		"sampleRate":          p.SampleRate,
		"sampleRateUnits":     p.SampleRateUnits,
		"loadUnits":           p.LoadUnits,
		"freqUnits":           p.FreqUnits,
		"shockProfileEntries": entries,
	}
	if err := s.c.invoke(ctx, op, lifeCycleService, "addShockProfile", fields, &resp); err != nil {
		return err
	}
	return s.c.finish(op, resp.ReturnCode, resp.Errors)
}
