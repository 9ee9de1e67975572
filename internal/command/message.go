package command

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/strmbuild/strm/internal/command/term"
	"github.com/strmbuild/strm/internal/fs"
	"github.com/strmbuild/strm/internal/log"
	"github.com/strmbuild/strm/pkg/cfg"
	"github.com/strmbuild/strm/pkg/fmtstring"
)

// templateCache caches parsed format strings across messagePrinter
// instantiations.
var templateCache = fmtstring.NewCache()

// messagePrinter renders status messages through the configured
// logging.message-format string.
// When a session log file is enabled, every printed message is additionally
// appended to it.
type messagePrinter struct {
	template  *fmtstring.Template
	keyLength int
	start     time.Time
	out       *term.Stream
	logFile   *os.File
}

func mustNewMessagePrinter(config *cfg.Config, out *term.Stream) *messagePrinter {
	template, err := templateCache.Parse(config.Logging.MessageFormat)
	exitOnErr(err, "parsing logging.message-format failed")

	return &messagePrinter{
		template:  template,
		keyLength: config.Logging.KeyLength,
		start:     time.Now(),
		out:       out,
	}
}

// enableSessionLog creates a per-invocation log file in logDir, the filename
// contains the start timestamp and a random ID.
func (p *messagePrinter) enableSessionLog(logDir string) error {
	if err := fs.Mkdir(logDir); err != nil {
		return fmt.Errorf("creating log directory %s failed: %w", logDir, err)
	}

	name := fmt.Sprintf("%s-%s.log",
		p.start.Format("20060102-150405"), uuid.NewString())

	f, err := os.Create(filepath.Join(logDir, name))
	if err != nil {
		return err
	}

	log.Debugf("session log: %s\n", f.Name())
	p.logFile = f

	return nil
}

func (p *messagePrinter) Close() error {
	if p.logFile == nil {
		return nil
	}

	return p.logFile.Close()
}

// Print renders a status message and writes it to the output stream and the
// session log file.
func (p *messagePrinter) Print(element, key, action, message string) {
	now := time.Now()

	line := p.template.Render(map[string]string{
		"elapsed":      formatElapsed(now.Sub(p.start), false),
		"elapsed-us":   formatElapsed(now.Sub(p.start), true),
		"wallclock":    now.Format("15:04:05"),
		"wallclock-us": now.Format("15:04:05.000000"),
		"key":          fmtstring.ShortKey(key, p.keyLength),
		"element":      element,
		"action":       action,
		"message":      message,
	})

	p.out.Println(line)

	if p.logFile != nil {
		fmt.Fprintln(p.logFile, line)
	}
}

func formatElapsed(d time.Duration, micros bool) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	if micros {
		return fmt.Sprintf("%02d:%02d:%02d.%06d", h, m, s, d.Microseconds()%1_000_000)
	}

	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
