//go:build !linux
// +build !linux

package hci

import (
	"fmt"

	"github.com/rigado/hci/hal"
)

func newSocketHal(id int) (hal.Hal, error) {
	return nil, fmt.Errorf("hci socket transport requires linux")
}
