package input

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/disgoorg/json"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/zeebo/xxh3"
)

// CurrentRecordingVer is written on the first line of every recording so that replays can reject
// recordings they cannot decode.
const CurrentRecordingVer = "1"

const checksumPrefix = "checksum "

// RecordingHeader describes how a recording was captured.
type RecordingHeader struct {
	Bindings      Bindings `json:"bindings"`
	FixedTimestep float32  `json:"fixed_timestep"`
	// CreatedAt is a unix timestamp in nanoseconds.
	CreatedAt int64 `json:"created_at"`
}

// Recording is a header plus every captured frame.
type Recording struct {
	Version string
	Header  RecordingHeader
	Frames  []Frame
}

// Script returns a Script that plays back the recorded frames.
func (r *Recording) Script() *Script {
	return NewScript(r.Frames...)
}

// Recorder writes frames to an io.Writer as they are captured. The format is line based: the
// version, the JSON encoded header, one JSON encoded frame per line and finally the xxh3 checksum
// of every frame line.
type Recorder struct {
	w      *bufio.Writer
	hasher *xxh3.Hasher
	frames int
	closed bool
}

// NewRecorder writes the version and header to w and returns a Recorder ready for frames.
func NewRecorder(w io.Writer, header RecordingHeader) (*Recorder, error) {
	bw := bufio.NewWriter(w)
	enc, err := json.Marshal(header)
	if err != nil {
		return nil, oerror.New("unable to encode recording header: %v", err)
	}
	if _, err := bw.WriteString(CurrentRecordingVer + "\n"); err != nil {
		return nil, err
	}
	if _, err := bw.Write(append(enc, '\n')); err != nil {
		return nil, err
	}
	return &Recorder{w: bw, hasher: xxh3.New()}, nil
}

// Record appends a frame to the recording.
func (r *Recorder) Record(f Frame) error {
	if r.closed {
		return oerror.New("recorder is closed")
	}
	enc, err := json.Marshal(f)
	if err != nil {
		return oerror.New("unable to encode frame %d: %v", r.frames, err)
	}
	enc = append(enc, '\n')
	_, _ = r.hasher.Write(enc)
	if _, err := r.w.Write(enc); err != nil {
		return err
	}
	r.frames++
	return nil
}

// Frames returns the number of frames recorded so far.
func (r *Recorder) Frames() int {
	return r.frames
}

// Close writes the checksum line and flushes the underlying writer. It does not close the writer.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if _, err := fmt.Fprintf(r.w, "%s%016x\n", checksumPrefix, r.hasher.Sum64()); err != nil {
		return err
	}
	return r.w.Flush()
}

// ReadRecording decodes a recording written by a Recorder and verifies its checksum.
func ReadRecording(rd io.Reader) (*Recording, error) {
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		return nil, oerror.New("recording is empty")
	}
	rec := &Recording{Version: strings.TrimSpace(sc.Text())}
	if rec.Version != CurrentRecordingVer {
		return nil, oerror.New("unsupported recording version %q (expected %q)", rec.Version, CurrentRecordingVer)
	}

	if !sc.Scan() {
		return nil, oerror.New("recording is missing its header")
	}
	if err := json.Unmarshal(sc.Bytes(), &rec.Header); err != nil {
		return nil, oerror.New("unable to decode recording header: %v", err)
	}

	hasher := xxh3.New()
	var (
		checksum    uint64
		hasChecksum bool
	)
	for sc.Scan() {
		line := sc.Bytes()
		if bytes.HasPrefix(line, []byte(checksumPrefix)) {
			v, err := strconv.ParseUint(string(line[len(checksumPrefix):]), 16, 64)
			if err != nil {
				return nil, oerror.New("malformed recording checksum: %v", err)
			}
			checksum, hasChecksum = v, true
			break
		}

		var f Frame
		if err := json.Unmarshal(line, &f); err != nil {
			return nil, oerror.New("unable to decode frame %d: %v", len(rec.Frames), err)
		}
		_, _ = hasher.Write(line)
		_, _ = hasher.Write([]byte{'\n'})
		rec.Frames = append(rec.Frames, f)
	}
	if err := sc.Err(); err != nil {
		return nil, oerror.New("unable to read recording: %v", err)
	}
	if !hasChecksum {
		return nil, oerror.New("recording is truncated: no checksum after %d frames", len(rec.Frames))
	}
	if sum := hasher.Sum64(); sum != checksum {
		return nil, oerror.New("recording checksum mismatch: got %016x, expected %016x", sum, checksum)
	}
	return rec, nil
}

// SaveRecording writes every frame of rec to the file at path, replacing it if it exists.
func SaveRecording(path string, rec *Recording) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return oerror.New("unable to open recording file: %v", err)
	}
	defer f.Close()

	r, err := NewRecorder(f, rec.Header)
	if err != nil {
		return err
	}
	for _, frame := range rec.Frames {
		if err := r.Record(frame); err != nil {
			return err
		}
	}
	return r.Close()
}

// LoadRecording reads and verifies the recording at path.
func LoadRecording(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, oerror.New("unable to open recording file: %v", err)
	}
	defer f.Close()
	return ReadRecording(f)
}
