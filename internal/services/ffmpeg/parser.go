package ffmpeg

import (
	"regexp"
	"strconv"
	"sync"
)

var (
	// ffmpeg announces the input length on stderr as "Duration: HH:MM:SS.cc".
	durationPattern = regexp.MustCompile(`Duration:\s*(\d+):(\d{2}):(\d{2})`)
	// -progress pipe:1 reports elapsed media time in microseconds. Older
	// builds label the same microsecond value out_time_ms.
	outTimePattern = regexp.MustCompile(`out_time_(?:us|ms)=(\d+)`)
)

// Parser converts one task's ffmpeg output streams into Events. Feed methods
// are safe to call from the goroutines draining each stream; each chunk is
// scanned as it arrives.
type Parser struct {
	mu      sync.Mutex
	emit    func(Event)
	total   float64
	started bool
	done    bool
}

// NewParser builds a parser delivering events to emit. A nil emit drops
// events, which keeps probing call sites simple.
func NewParser(emit func(Event)) *Parser {
	if emit == nil {
		emit = func(Event) {}
	}
	return &Parser{emit: emit}
}

// FeedDiagnostic scans a diagnostic-stream chunk for the duration
// announcement. The first match wins; later duration lines are ignored to
// match the historical behavior downstream consumers rely on.
func (p *Parser) FeedDiagnostic(chunk []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started || p.done {
		return
	}
	match := durationPattern.FindSubmatch(chunk)
	if match == nil {
		return
	}
	hours, _ := strconv.Atoi(string(match[1]))
	minutes, _ := strconv.Atoi(string(match[2]))
	seconds, _ := strconv.Atoi(string(match[3]))
	p.total = float64(hours*3600 + minutes*60 + seconds)
	p.started = true
	p.emit(Event{Type: EventStarted, Total: p.total})
}

// FeedProgress scans a machine-readable chunk for elapsed-time fields and
// emits one progress event per field found. Progress before the duration has
// been observed is dropped; elapsed media time means nothing without a
// total to measure it against.
func (p *Parser) FeedProgress(chunk []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started || p.done {
		return
	}
	for _, match := range outTimePattern.FindAllSubmatch(chunk, -1) {
		micros, err := strconv.ParseInt(string(match[1]), 10, 64)
		if err != nil {
			continue
		}
		p.emit(Event{Type: EventProgress, Elapsed: float64(micros) / 1e6})
	}
}

// Finish emits the terminal event for the task. A nil err means a clean
// exit. Exactly one terminal event is emitted no matter how often Finish is
// called.
func (p *Parser) Finish(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done {
		return
	}
	p.done = true
	if err == nil {
		p.emit(Event{Type: EventSuccess})
		return
	}
	p.emit(Event{Type: EventFailure, Err: err})
}

// Total returns the observed media duration in seconds, 0 until started.
func (p *Parser) Total() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}
