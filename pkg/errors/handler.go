package errors

import (
	"runtime/debug"
	"sync/atomic"
	"time"
)

// handlerBox lets atomic.Pointer hold an interface value.
type handlerBox struct{ h ErrorHandler }

var current atomic.Pointer[handlerBox]

// now stamps reports. Tests replace it to get stable timestamps.
var now = time.Now

func init() {
	current.Store(&handlerBox{h: &LogHandler{}})
}

// Handler returns the handler receiving reports.
func Handler() ErrorHandler {
	return current.Load().h
}

// SetHandler installs h and returns the handler it replaced. Nil installs a
// quiet [LogHandler] writing to stderr. It is safe to call while frames are
// running.
func SetHandler(h ErrorHandler) (previous ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	return current.Swap(&handlerBox{h: h}).h
}

// Report hands err to the installed handler, stamping it if needed.
func Report(err *MotionError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = now()
	}
	Handler().HandleError(err)
}

// ReportError reports err under op. A *MotionError in err's chain is
// reported as-is; anything else is wrapped with the given kind.
func ReportError(op string, kind ErrorKind, err error) {
	ReportKey(op, kind, "", err)
}

// ReportKey is ReportError for a failure tied to one motion value. A
// *MotionError found in err's chain is reported as a copy carrying key
// when it has none of its own.
func ReportKey(op string, kind ErrorKind, key string, err error) {
	if err == nil {
		return
	}
	var me *MotionError
	if As(err, &me) {
		if me.Key == "" && key != "" {
			cp := *me
			cp.Key = key
			me = &cp
		}
		Report(me)
		return
	}
	Report(&MotionError{Op: op, Kind: kind, Key: key, Err: err})
}

// ReportPanic hands a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = now()
	}
	Handler().HandlePanic(err)
}

// Recover must be deferred directly. It reports a panic under op and then
// runs each of then with the panic value, which is how a frame callback
// stops the animation that blew up:
//
//	defer errors.Recover("animation.tick", func(any) { c.finish(StatusStopped) })
func Recover(op string, then ...func(r any)) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: string(debug.Stack())})
	for _, fn := range then {
		if fn != nil {
			fn(r)
		}
	}
}
