// Package chunker plans how a video is split into parts.
//
// Planning is pure: it takes the file size, the probed duration and a
// models.SplitRequest and returns the ordered segments. Running ffmpeg for
// each segment is the job of package segmenter.
package chunker

import (
	"math"

	"github.com/pkg/errors"

	"jtools/models"
)

// MaxParts bounds the number of parts a single file can be split into.
const MaxParts = 9999

// ErrNoSplitNeeded is returned in part-size mode when the file already fits
// into one part.
var ErrNoSplitNeeded = errors.New("file does not exceed the target part size")

// PartCount returns the number of parts for a file of size bytes with a
// target part size of partSize bytes: floor(size/partSize) + 1.
//
// The extra part is deliberate. A file of exactly twice the target size is
// split into three parts, never two, so no part can end up larger than the
// target because of container overhead.
func PartCount(size, partSize int64) int {
	if partSize <= 0 {
		return 0
	}
	return int(size/partSize) + 1
}

// Plan computes the segments for a file.
//
// In part-count mode the file is cut into req.PartCount segments of equal
// duration. In part-size mode the count comes from PartCount and the file is
// then cut the same way; a file no larger than the target size yields
// ErrNoSplitNeeded.
//
// Example:
//
//	req, _ := models.NewPartCountRequest(3, 0)
//	segs, _ := chunker.Plan(info.Size(), 90, req)
//	// segs: {1 0 30} {2 30 30} {3 60 30}
func Plan(size int64, duration float64, req models.SplitRequest) ([]models.Segment, error) {
	if err := req.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid split request")
	}

	var count int
	switch req.Mode {
	case models.ModePartCount:
		count = req.PartCount
	case models.ModePartSize:
		if size <= req.PartSize {
			return nil, ErrNoSplitNeeded
		}
		count = PartCount(size, req.PartSize)
	}

	return EvenSegments(duration, count)
}

// EvenSegments cuts duration seconds into count segments of duration/count
// each, starting at i*duration/count.
//
// The last segment's nominal end may differ from duration by float rounding.
// That is accepted: ffmpeg stops at the real end of the media.
func EvenSegments(duration float64, count int) ([]models.Segment, error) {
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration <= 0 {
		return nil, errors.Errorf("invalid duration: %v seconds", duration)
	}
	if count < 1 {
		return nil, errors.Errorf("part count must be at least 1, got %d", count)
	}
	if count > MaxParts {
		return nil, errors.Errorf("part count %d exceeds the maximum of %d", count, MaxParts)
	}

	partDuration := duration / float64(count)
	segments := make([]models.Segment, 0, count)
	for i := 0; i < count; i++ {
		seg := models.Segment{
			Index:    i + 1,
			Start:    float64(i) * partDuration,
			Duration: partDuration,
		}
		if err := seg.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid segment %d", i+1)
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// ValidateSegments checks a plan for completeness and correctness: indexes
// run 1..n and consecutive segments neither overlap nor leave gaps beyond
// float rounding.
func ValidateSegments(segments []models.Segment) error {
	if len(segments) == 0 {
		return errors.New("segment list is empty")
	}

	for i, seg := range segments {
		if err := seg.Validate(); err != nil {
			return errors.Wrapf(err, "segment %d is invalid", i+1)
		}
		if seg.Index != i+1 {
			return errors.Errorf("segment %d has incorrect index: expected %d, got %d", i+1, i+1, seg.Index)
		}
	}

	if segments[0].Start != 0 {
		return errors.Errorf("first segment starts at %.3f, expected 0", segments[0].Start)
	}

	for i := 0; i < len(segments)-1; i++ {
		end := segments[i].End()
		next := segments[i+1].Start
		if math.Abs(end-next) > tolerance(end) {
			return errors.Errorf("segments %d and %d are not contiguous: %d ends at %.6f, %d starts at %.6f",
				i+1, i+2, i+1, end, i+2, next)
		}
	}

	return nil
}

// TotalDuration sums the durations of segments.
func TotalDuration(segments []models.Segment) float64 {
	total := 0.0
	for _, s := range segments {
		total += s.Duration
	}
	return total
}

func tolerance(v float64) float64 {
	return 1e-9 * math.Max(1, math.Abs(v))
}
