package notifygate

// Logger интерфейс логгера, используемый клиентом
type Logger interface {
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}
