package bezmesh

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrNegativeDegree is returned when constructing an entity with a negative
// degree.
var ErrNegativeDegree = errors.New("negative degree")

// ErrDegreeTooLarge is returned when the number of control points of an entity
// doesn't fit in an int.
var ErrDegreeTooLarge = errors.New("degree too large")

// CountError reports that the wrong number of values was provided.
type CountError struct {
	// What is being counted, e.g. "control points" or "lines".
	What     string
	Expected int
	Got      int
	// AtLeast is set if Expected is a lower bound.
	AtLeast bool
}

func (e *CountError) Error() string {
	if e.AtLeast {
		return fmt.Sprintf("%d %s given, at least %d expected", e.Got, e.What, e.Expected)
	}
	return fmt.Sprintf("%d %s given, %d expected", e.Got, e.What, e.Expected)
}

// FieldError reports a line of text that doesn't have the expected number of
// coordinates.
type FieldError struct {
	// Line is the 1-based line number.
	Line     int
	Expected int
	Got      int
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("line %d: %d coordinates given, %d expected", e.Line, e.Got, e.Expected)
}

// ParsePatch parses a patch of degree n in u and m in v from text.
//
// The text holds one value per line, consisting of three whitespace-separated
// numbers: first the (n+1)·(m+1) control points as x y z in row-major order,
// then the four corner colors as r g b in the order documented on [Patch].
// Blank lines and lines starting with '#' are ignored.
//
// Malformed input results in a [*FieldError], a [*CountError], or a wrapped
// [strconv.NumError].
func ParsePatch(n, m int, text string) (Patch[Vec3], error) {
	if n < 0 || m < 0 {
		return Patch[Vec3]{}, fmt.Errorf("patch of degree (%d, %d): %w", n, m, ErrNegativeDegree)
	}
	numPoints, ok := patchSize(n, m)
	if !ok || numPoints > math.MaxInt-4 {
		return Patch[Vec3]{}, fmt.Errorf("patch of degree (%d, %d): %w", n, m, ErrDegreeTooLarge)
	}

	var vals []Vec3
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := parseVec3(line)
		if err != nil {
			var fe *FieldError
			if errors.As(err, &fe) {
				fe.Line = i + 1
				return Patch[Vec3]{}, fe
			}
			return Patch[Vec3]{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		vals = append(vals, v)
	}
	if want := numPoints + 4; len(vals) != want {
		return Patch[Vec3]{}, &CountError{What: "values", Expected: want, Got: len(vals)}
	}

	var colors [4]Color
	for i, v := range vals[numPoints:] {
		colors[i] = RGB(v.X, v.Y, v.Z)
	}
	return NewPatch(n, m, vals[:numPoints], colors)
}

// ReadPatch is like [ParsePatch] but reads the text from r.
func ReadPatch(r io.Reader, n, m int) (Patch[Vec3], error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Patch[Vec3]{}, err
	}
	return ParsePatch(n, m, string(b))
}

func parseVec3(line string) (Vec3, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Vec3{}, &FieldError{Expected: 3, Got: len(fields)}
	}
	var xyz [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Vec3{}, err
		}
		xyz[i] = v
	}
	return Vec(xyz[0], xyz[1], xyz[2]), nil
}
