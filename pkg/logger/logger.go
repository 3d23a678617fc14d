package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String возвращает строковое представление уровня
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel парсит уровень логирования из строки конфигурации
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %q", s)
	}
}

// Event одно событие лога, попадающее в кольцевой буфер
type Event struct {
	Time    time.Time
	Level   Level
	Message string
}

// Listener получает события лога по мере их записи
// Используется UI/отладочными инструментами вместо перехвата глобальной консоли
type Listener func(Event)

// Logger леверованный логгер с записью в файл и stdout
// Хранит кольцевой буфер последних событий для отладочной панели
type Logger struct {
	mu        sync.Mutex
	level     Level
	std       *log.Logger
	file      *os.File
	ring      []Event
	ringNext  int
	ringFull  bool
	listeners []Listener
}

// ringSize размер кольцевого буфера последних событий
const ringSize = 256

// New создает логгер, пишущий в указанный файл и stdout
// Пустое имя файла означает запись только в stdout
func New(filename string, levelStr string) (*Logger, error) {
	level, err := ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stdout
	var file *os.File

	if filename != "" {
		file, err = os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", filename, err)
		}
		out = io.MultiWriter(os.Stdout, file)
	}

	return &Logger{
		level: level,
		std:   log.New(out, "", log.LstdFlags),
		file:  file,
		ring:  make([]Event, ringSize),
	}, nil
}

// Close закрывает файл лога
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
}

// Subscribe регистрирует слушателя событий лога
func (l *Logger) Subscribe(fn Listener) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, fn)
}

// Recent возвращает последние события из кольцевого буфера (от старых к новым)
func (l *Logger) Recent() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.ringFull {
		out := make([]Event, l.ringNext)
		copy(out, l.ring[:l.ringNext])
		return out
	}

	out := make([]Event, 0, ringSize)
	out = append(out, l.ring[l.ringNext:]...)
	out = append(out, l.ring[:l.ringNext]...)
	return out
}

// Debug логирует сообщение с уровнем DEBUG
func (l *Logger) Debug(format string, v ...interface{}) {
	l.write(LevelDebug, format, v...)
}

// Info логирует сообщение с уровнем INFO
func (l *Logger) Info(format string, v ...interface{}) {
	l.write(LevelInfo, format, v...)
}

// Warn логирует сообщение с уровнем WARN
func (l *Logger) Warn(format string, v ...interface{}) {
	l.write(LevelWarn, format, v...)
}

// Error логирует сообщение с уровнем ERROR
func (l *Logger) Error(format string, v ...interface{}) {
	l.write(LevelError, format, v...)
}

// Fatal логирует сообщение с уровнем ERROR и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.write(LevelError, format, v...)
	l.Close()
	os.Exit(1)
}

func (l *Logger) write(level Level, format string, v ...interface{}) {
	if level < l.level {
		return
	}

	msg := fmt.Sprintf(format, v...)
	event := Event{Time: time.Now(), Level: level, Message: msg}

	l.mu.Lock()
	l.ring[l.ringNext] = event
	l.ringNext = (l.ringNext + 1) % ringSize
	if l.ringNext == 0 {
		l.ringFull = true
	}
	listeners := make([]Listener, len(l.listeners))
	copy(listeners, l.listeners)
	l.mu.Unlock()

	l.std.Printf("[%s] %s", level, msg)

	for _, fn := range listeners {
		fn(event)
	}
}
