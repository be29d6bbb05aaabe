package artifact

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// ErrEmptySamples indicates an encoder was called with zero samples;
// the wire format has no header, so an empty table is ambiguous.
var ErrEmptySamples = errors.New("artifact: samples must be non-empty")

// EncodeBinary writes samples as a fixed n×6 little-endian float32
// table with no framing or header: downstream consumers know the
// column layout (x, y, curvature, heading, arc_length, speed_limit)
// from the contract, not from the file itself (spec §6).
func EncodeBinary(w io.Writer, samples []Sample) error {
	if len(samples) == 0 {
		return ErrEmptySamples
	}

	row := make([]float32, 6)
	for i, s := range samples {
		row[0], row[1], row[2] = s.X, s.Y, s.Curvature
		row[3], row[4], row[5] = s.Heading, s.ArcLength, s.SpeedLimit
		if err := binary.Write(w, binary.LittleEndian, row); err != nil {
			return fmt.Errorf("artifact: encoding row %d: %w", i, err)
		}
	}
	return nil
}

// EncodeCSV writes samples as a header + data CSV, grounded on
// telemetry.OutputManager.WriteTelemetry's gocsv.Marshal usage
// (_examples/pthm-soup/telemetry/output.go).
func EncodeCSV(w io.Writer, samples []Sample) error {
	if len(samples) == 0 {
		return ErrEmptySamples
	}

	if err := gocsv.Marshal(samples, w); err != nil {
		return fmt.Errorf("artifact: encoding csv: %w", err)
	}
	return nil
}
