package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones para el logger.
type Config struct {
	App   string    // se adjunta como campo "app" a cada evento
	Env   string    // development -> consola legible; resto -> JSON
	Level string    // LOG_LEVEL; vacío o desconocido -> info
	Out   io.Writer // por defecto os.Stdout
}

// Logger raíz del servicio. Cada pieza (shell, catalog, http) recibe un
// sublogger con su campo "component".
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger raíz y lo instala como logger global de zerolog.
func New(cfg Config) *Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	}

	zc := zerolog.New(out).Level(level(cfg.Level)).With().Timestamp()
	if cfg.App != "" {
		zc = zc.Str("app", cfg.App)
	}
	zl := zc.Logger()

	log.Logger = zl
	return &Logger{zl: zl}
}

func level(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// Component devuelve un sublogger etiquetado con la pieza que lo usa.
func (l *Logger) Component(name string) zerolog.Logger {
	return l.zl.With().Str("component", name).Logger()
}
