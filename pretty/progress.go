package pretty

import (
	"sync"
	"time"

	"github.com/nickboucher/abom/common"
)

// ProgressIndicator is a live progress visualization for long operations.
type ProgressIndicator interface {
	Start()
	Stop(success bool)
	Update(current int64, message string)
	IsRunning() bool
}

// Spinner shows an animated marker while an operation of unknown length
// runs. Outside of interactive terminals it degrades to a single line.
type Spinner struct {
	message  string
	frames   []string
	running  bool
	stopChan chan bool
	mu       sync.Mutex
}

func NewSpinner(message string) ProgressIndicator {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	if !Interactive || !Iconic {
		frames = []string{"|", "/", "-", "\\"}
	}
	return &Spinner{
		message:  message,
		frames:   frames,
		stopChan: make(chan bool, 1),
	}
}

func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	if !Interactive {
		common.Stdout("%s\n", s.message)
		return
	}

	HideCursor()
	go s.animate()
}

func (s *Spinner) animate() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	frameIndex := 0
	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.mu.Lock()
			frame := s.frames[frameIndex]
			message := s.message
			s.mu.Unlock()
			common.Stdout("\r%s%s %s", csif("0K"), frame, message)
			frameIndex = (frameIndex + 1) % len(s.frames)
		}
	}
}

func (s *Spinner) Stop(success bool) {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	if !Interactive {
		return
	}

	s.stopChan <- true
	common.Stdout("\r%s", csif("0K"))
	ShowCursor()
	common.Stdout("\r%s%s%s %s%s\n", csif("0K"), statusColorOf(success), statusMarkOf(success), s.message, Reset)
}

func (s *Spinner) Update(current int64, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
}

func (s *Spinner) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// ProgressBar shows completion of an operation with a known total.
type ProgressBar struct {
	message string
	total   int64
	current int64
	running bool
	started time.Time
	mu      sync.Mutex
}

func NewProgressBar(message string, total int64) ProgressIndicator {
	return &ProgressBar{
		message: message,
		total:   total,
	}
}

func (p *ProgressBar) Start() {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	p.started = time.Now()
	p.mu.Unlock()

	if !Interactive {
		common.Stdout("%s\n", p.message)
		return
	}
	HideCursor()
	p.draw()
}

func (p *ProgressBar) Stop(success bool) {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.mu.Unlock()

	if !Interactive {
		return
	}
	common.Stdout("\r%s", csif("0K"))
	ShowCursor()
	common.Stdout("\r%s%s%s %s%s\n", csif("0K"), statusColorOf(success), statusMarkOf(success), p.message, Reset)
}

func (p *ProgressBar) Update(current int64, message string) {
	p.mu.Lock()
	p.current = current
	if message != "" {
		p.message = message
	}
	running := p.running
	p.mu.Unlock()

	if Interactive && running {
		p.draw()
	}
}

func (p *ProgressBar) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

func (p *ProgressBar) draw() {
	p.mu.Lock()
	current := p.current
	total := p.total
	message := p.message
	p.mu.Unlock()

	percentage := 0
	if total > 0 {
		percentage = int((current * 100) / total)
		if percentage > 100 {
			percentage = 100
		}
	}

	barWidth := TerminalWidth() - len(message) - 12
	if barWidth < 10 {
		barWidth = 10
	}
	if barWidth > 50 {
		barWidth = 50
	}

	filled := (percentage * barWidth) / 100
	bar := make([]byte, 0, barWidth)
	for at := 0; at < barWidth; at++ {
		switch {
		case at < filled-1:
			bar = append(bar, '=')
		case at == filled-1:
			bar = append(bar, '>')
		default:
			bar = append(bar, ' ')
		}
	}

	common.Stdout("\r%s[%s] %3d%% %s", csif("0K"), string(bar), percentage, message)
}

func statusMarkOf(success bool) string {
	if Iconic {
		if success {
			return "✓"
		}
		return "✗"
	}
	if success {
		return "[OK]"
	}
	return "[FAIL]"
}

func statusColorOf(success bool) string {
	if success {
		return Green
	}
	return Red
}
