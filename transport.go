package hci

import (
	"fmt"
	"time"

	"github.com/rigado/hci/h4"
	"github.com/rigado/hci/hal"
)

type transportHci struct {
	id int
}

type transportH4Socket struct {
	addr    string
	timeout time.Duration
}

type transportH4Uart struct {
	path string
}

type transportCustom struct {
	hal hal.Hal
}

type transport struct {
	hci      *transportHci
	h4uart   *transportH4Uart
	h4socket *transportH4Socket
	custom   *transportCustom
}

func getTransport(t transport) (hal.Hal, error) {
	switch {
	case t.custom != nil:
		return t.custom.hal, nil

	case t.hci != nil:
		return newSocketHal(t.hci.id)

	case t.h4socket != nil:
		rwc, err := h4.NewSocket(t.h4socket.addr, t.h4socket.timeout)
		if err != nil {
			return nil, err
		}
		return h4.NewHal(rwc), nil

	case t.h4uart != nil:
		so := h4.DefaultSerialOptions()
		so.PortName = t.h4uart.path
		rwc, err := h4.NewSerial(so)
		if err != nil {
			return nil, err
		}
		return h4.NewHal(rwc), nil

	default:
		return nil, fmt.Errorf("no valid transport found")
	}
}
