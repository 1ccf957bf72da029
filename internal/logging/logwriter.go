package logging

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"strings"
)

// ChiLogWriter sends the output of chi's default request logger to logrus
type ChiLogWriter struct {
}

func (lw *ChiLogWriter) Print(a ...interface{}) {
	if len(a) == 0 {
		return
	}
	if len(a) == 1 {
		logrus.Debug(strings.TrimSpace(fmt.Sprint(a[0])))
	} else {
		logrus.Debugf(fmt.Sprint(a[0]), a[1:]...)
	}
}
