package sherlock

import (
	"context"
	"fmt"
	"strconv"
	"sync"
)

// Matching selects how parts in a parts library are matched against the
// parts list.
type Matching string

// Matching modes.
const (
	MatchBoth Matching = "Both"
	MatchPart Matching = "Part"
)

// Duplication selects what happens when a part matches more than one
// library entry.
type Duplication string

// Duplication modes.
const (
	DuplicationFirst  Duplication = "First"
	DuplicationError  Duplication = "Error"
	DuplicationIgnore Duplication = "Ignore"
)

// PartLocation positions one part on a CCA. Fields are strings for parity
// with the parts-list CSV format; an empty string leaves the property
// unchanged on the server.
type PartLocation struct {
	RefDes   string
	X        string
	Y        string
	Rotation string
	// Units holds the units for X and Y, e.g. "in" or "mm". Required when
	// either coordinate is set.
	Units     string
	BoardSide string
	// Mirrored is "True", "False", or empty.
	Mirrored string
}

// PartsService manages the parts list of a CCA.
type PartsService struct {
	c *Client

	mu            sync.Mutex
	locationUnits []string
	boardSides    []string
}

// UpdatePartsList updates the parts list of a CCA from a parts library.
func (s *PartsService) UpdatePartsList(ctx context.Context, project, cca, partLibrary string, matching Matching, duplication Duplication) error {
	const op = "update parts list"
	switch {
	case project == "":
		return &ArgumentError{Op: op, Message: "project name is blank"}
	case cca == "":
		return &ArgumentError{Op: op, Message: "CCA name is blank"}
	case partLibrary == "":
		return &ArgumentError{Op: op, Message: "parts library is blank"}
	}
	switch matching {
	case MatchBoth, MatchPart:
	default:
		return &ArgumentError{Op: op, Message: "invalid matching argument"}
	}
	switch duplication {
	case DuplicationFirst, DuplicationError, DuplicationIgnore:
	default:
		return &ArgumentError{Op: op, Message: "invalid duplication argument"}
	}
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	var resp struct {
		ReturnCode  returnCode `json:"returnCode"`
		UpdateError []string   `json:"updateError"`
	}
	fields := map[string]any{
		"project":     project,
		"ccaName":     cca,
		"partLibrary": partLibrary,
		"matching":    string(matching),
		"duplication": string(duplication),
	}
	if err := s.c.invoke(ctx, op, partsService, "updatePartsList", fields, &resp); err != nil {
		return err
	}
	return s.c.finish(op, resp.ReturnCode, resp.UpdateError)
}

// UpdatePartsLocations updates the locations of one or more parts on a
// CCA. Every location is validated client-side before any call is made.
func (s *PartsService) UpdatePartsLocations(ctx context.Context, project, cca string, parts []PartLocation) error {
	const op = "update parts locations"
	switch {
	case project == "":
		return &ArgumentError{Op: op, Message: "project name is blank"}
	case cca == "":
		return &ArgumentError{Op: op, Message: "CCA name is blank"}
	case len(parts) == 0:
		return &ArgumentError{Op: op, Message: "missing part location properties"}
	}
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	if err := s.checkPartLocations(ctx, op, parts); err != nil {
		return err
	}
	locs := make([]map[string]any, 0, len(parts))
	for _, p := range parts {
		locs = append(locs, map[string]any{
			"refDes":        p.RefDes,
			"x":             p.X,
			"y":             p.Y,
			"rotation":      p.Rotation,
			"locationUnits": p.Units,
			"boardSide":     p.BoardSide,
			"mirrored":      p.Mirrored,
		})
	}
	var resp struct {
		ReturnCode  returnCode `json:"returnCode"`
		UpdateError []string   `json:"updateError"`
	}
	fields := map[string]any{
		"project": project,
		"ccaName": cca,
		"partLoc": locs,
	}
	if err := s.c.invoke(ctx, op, partsService, "updatePartsLocations", fields, &resp); err != nil {
		return err
	}
	return s.c.finish(op, resp.ReturnCode, resp.UpdateError)
}

// checkPartLocations mirrors the server's location rules so bad input is
// rejected without mutating anything. Membership checks are skipped when
// the server's unit lists could not be fetched.
func (s *PartsService) checkPartLocations(ctx context.Context, op string, parts []PartLocation) error {
	units := s.partLocationUnits(ctx)
	sides := s.boardSideList(ctx)
	for i, p := range parts {
		bad := func(msg string) error {
			return &ArgumentError{Op: op, Message: fmt.Sprintf("invalid part location %d: %s", i, msg)}
		}
		if p.RefDes == "" {
			return &ArgumentError{Op: op, Message: "missing ref des"}
		}
		if p.Units != "" && units != nil && !contains(units, p.Units) {
			return bad("invalid location units specified")
		}
		if p.X != "" {
			if p.Units == "" {
				return bad("missing location units")
			}
			if _, err := strconv.ParseFloat(p.X, 64); err != nil {
				return bad("invalid location X coordinate specified")
			}
		}
		if p.Y != "" {
			if p.Units == "" {
				return bad("missing location units")
			}
			if _, err := strconv.ParseFloat(p.Y, 64); err != nil {
				return bad("invalid location Y coordinate specified")
			}
		}
		if p.Rotation != "" {
			rotation, err := strconv.ParseFloat(p.Rotation, 64)
			if err != nil || rotation < -360 || rotation > 360 {
				return bad("invalid location rotation specified")
			}
		}
		if p.BoardSide != "" && sides != nil && !contains(sides, p.BoardSide) {
			return bad("invalid location board side specified")
		}
		if p.Mirrored != "" && p.Mirrored != "True" && p.Mirrored != "False" {
			return bad("invalid location mirrored specified")
		}
	}
	return nil
}

// partLocationUnits fetches the server's location units once. Returns nil
// when the list is unavailable, which disables membership validation.
func (s *PartsService) partLocationUnits(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locationUnits == nil {
		s.locationUnits = s.c.fetchList(ctx, partsService, "getPartLocationUnits", "units")
	}
	return s.locationUnits
}

// boardSideList fetches the server's board sides once.
func (s *PartsService) boardSideList(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.boardSides == nil {
		s.boardSides = s.c.fetchList(ctx, partsService, "getBoardSides", "boardSides")
	}
	return s.boardSides
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
