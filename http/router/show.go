package router

import (
	"fmt"
	"io"
	"reflect"
	"runtime"
	"strings"

	"github.com/fatih/color"
)

// A ShowOption configures the listing [ShowRoutes] writes.
type ShowOption func(*showConfig)

type showConfig struct {
	verbose  bool
	colorize bool
}

// Verbose lists the handler and middlewares under each route.
func Verbose() ShowOption {
	return func(c *showConfig) { c.verbose = true }
}

// Colorize sets whether methods are colored; the default follows [color.NoColor].
func Colorize(on bool) ShowOption {
	return func(c *showConfig) { c.colorize = on }
}

var methodColors = map[string]color.Attribute{
	"GET":     color.FgBlue,
	"POST":    color.FgGreen,
	"PUT":     color.FgYellow,
	"PATCH":   color.FgYellow,
	"DELETE":  color.FgRed,
	"OPTIONS": color.FgCyan,
	"HEAD":    color.FgMagenta,
	MethodAll: color.FgWhite,
}

// ShowRoutes writes the route table of r to w, one route per line in registration order.
func ShowRoutes(w io.Writer, r *Router, opts ...ShowOption) error {
	c := &showConfig{colorize: !color.NoColor}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	width := 0
	routes := r.Routes()
	for _, route := range routes {
		if len(route.Method) > width {
			width = len(route.Method)
		}
	}

	for _, route := range routes {
		method := route.Method + strings.Repeat(" ", width-len(route.Method))
		if attr, ok := methodColors[route.Method]; ok {
			clr := color.New(attr)
			if c.colorize {
				clr.EnableColor()
			} else {
				clr.DisableColor()
			}
			method = clr.Sprint(method)
		}

		if _, err := fmt.Fprintf(w, "%s  %s\n", method, route.Path); err != nil {
			return err
		}

		if !c.verbose {
			continue
		}

		indent := strings.Repeat(" ", width+2)
		for _, mw := range route.Middlewares {
			if _, err := fmt.Fprintf(w, "%s[middleware] %s\n", indent, funcName(mw)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s[handler] %s\n", indent, funcName(route.Handler)); err != nil {
			return err
		}
	}

	return nil
}

func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "<nil>"
	}

	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "<unknown>"
	}

	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
