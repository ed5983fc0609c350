package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"

	"github.com/rigado/hci"
	"github.com/rigado/hci/cmd"
	"github.com/rigado/hci/evt"
	"github.com/rigado/hci/snoop"
)

// config supplies transport defaults so a bench setup does not need the
// same flags on every invocation. Flags always win over the file.
type config struct {
	Device  *int   `yaml:"device"`
	Uart    string `yaml:"uart"`
	Socket  string `yaml:"socket"`
	Timeout string `yaml:"timeout"`
}

func main() {
	app := cli.NewApp()

	app.Name = "hcitool"
	app.Usage = "poke an HCI controller over any supported transport"
	app.Version = "0.1.0"
	app.Action = cli.ShowAppHelp
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "device, d",
			Usage: "hci socket device id",
		},
		cli.StringFlag{
			Name:  "uart, u",
			Usage: "h4 uart device path",
		},
		cli.StringFlag{
			Name:  "socket, s",
			Usage: "h4 socket server address",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "yaml file with transport defaults",
		},
		cli.DurationFlag{
			Name:  "timeout, t",
			Usage: "command watchdog interval",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "trace level logging",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:    "reset",
			Aliases: []string{"r"},
			Usage:   "Reset the controller",
			Action:  reset,
		},
		{
			Name:    "version",
			Aliases: []string{"v"},
			Usage:   "Read local version information",
			Action:  version,
		},
		{
			Name:    "bdaddr",
			Aliases: []string{"a"},
			Usage:   "Read the controller address",
			Action:  bdaddr,
		},
		{
			Name:    "up",
			Aliases: []string{"u"},
			Usage:   "Bring the controller to a usable state",
			Action:  up,
		},
		{
			Name:   "snoop",
			Usage:  "Record transport traffic to a trace file",
			Action: capture,
			Flags: []cli.Flag{
				cli.StringFlag{Name: "out, o", Value: "hci.btsnoop", Usage: "trace file"},
				cli.StringFlag{Name: "format, f", Value: "btsnoop", Usage: "btsnoop / jsonl"},
				cli.DurationFlag{Name: "duration, d", Value: 10 * time.Second, Usage: "capture window"},
				cli.BoolFlag{Name: "scan", Usage: "enable LE scanning while capturing"},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "can't read config")
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrap(err, "can't parse config")
	}
	return cfg, nil
}

func transportOption(c *cli.Context, cfg config) hci.Option {
	switch {
	case c.GlobalIsSet("device"):
		return hci.OptTransportHCISocket(c.GlobalInt("device"))
	case len(c.GlobalString("uart")) > 0:
		return hci.OptTransportH4Uart(c.GlobalString("uart"))
	case len(c.GlobalString("socket")) > 0:
		return hci.OptTransportH4Socket(c.GlobalString("socket"), 2*time.Second)
	case len(cfg.Uart) > 0:
		return hci.OptTransportH4Uart(cfg.Uart)
	case len(cfg.Socket) > 0:
		return hci.OptTransportH4Socket(cfg.Socket, 2*time.Second)
	case cfg.Device != nil:
		return hci.OptTransportHCISocket(*cfg.Device)
	}
	return hci.OptTransportHCISocket(0)
}

func open(c *cli.Context, extra ...hci.Option) (*hci.HCI, error) {
	cfg, err := loadConfig(c.GlobalString("config"))
	if err != nil {
		return nil, err
	}

	if c.GlobalBool("verbose") {
		hci.SetLogLevelMax()
	}

	timeout := c.GlobalDuration("timeout")
	if timeout == 0 && len(cfg.Timeout) > 0 {
		if timeout, err = time.ParseDuration(cfg.Timeout); err != nil {
			return nil, errors.Wrap(err, "can't parse config timeout")
		}
	}

	opts := []hci.Option{transportOption(c, cfg)}
	if timeout > 0 {
		opts = append(opts, hci.OptCommandTimeout(timeout))
	}
	opts = append(opts, extra...)

	dev, err := hci.NewHCI(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "can't create hci")
	}
	if err := dev.Init(); err != nil {
		dev.Close()
		return nil, errors.Wrap(err, "can't init hci")
	}
	return dev, nil
}

func reset(c *cli.Context) error {
	dev, err := open(c)
	if err != nil {
		return err
	}
	defer dev.Close()

	if err := dev.Send(&cmd.Reset{}, nil); err != nil {
		return errors.Wrap(err, "reset failed")
	}
	fmt.Println("reset: ok")
	return nil
}

func version(c *cli.Context) error {
	dev, err := open(c)
	if err != nil {
		return err
	}
	defer dev.Close()

	rp := cmd.ReadLocalVersionInformationRP{}
	if err := dev.Send(&cmd.ReadLocalVersionInformation{}, &rp); err != nil {
		return errors.Wrap(err, "can't read version")
	}
	fmt.Printf("HCI version:  %d (revision 0x%04X)\n", rp.HCIVersion, rp.HCIRevision)
	fmt.Printf("LMP version:  %d (subversion 0x%04X)\n", rp.LMPPAMVersion, rp.LMPPAMSubversion)
	fmt.Printf("Manufacturer: 0x%04X\n", rp.ManufacturerName)
	return nil
}

func bdaddr(c *cli.Context) error {
	dev, err := open(c)
	if err != nil {
		return err
	}
	defer dev.Close()

	rp := cmd.ReadBDADDRRP{}
	if err := dev.Send(&cmd.ReadBDADDR{}, &rp); err != nil {
		return errors.Wrap(err, "can't read bd_addr")
	}
	a := rp.BDADDR
	fmt.Printf("%02X:%02X:%02X:%02X:%02X:%02X\n", a[5], a[4], a[3], a[2], a[1], a[0])
	return nil
}

func up(c *cli.Context) error {
	dev, err := open(c)
	if err != nil {
		return err
	}
	defer dev.Close()

	bufSize := cmd.ReadBufferSizeRP{}
	if err := dev.Send(&cmd.ReadBufferSize{}, &bufSize); err != nil {
		return errors.Wrap(err, "can't read buffer size")
	}
	aclLen := int(bufSize.HCACLDataPacketLength)
	aclCnt := int(bufSize.HCTotalNumACLDataPackets)

	leBufSize := cmd.LEReadBufferSizeRP{}
	if err := dev.Send(&cmd.LEReadBufferSize{}, &leBufSize); err != nil {
		return errors.Wrap(err, "can't read le buffer size")
	}
	if leBufSize.HCTotalNumLEDataPackets != 0 {
		// Okay, LE-U do have their own buffers.
		aclLen = int(leBufSize.HCLEDataPacketLength)
		aclCnt = int(leBufSize.HCTotalNumLEDataPackets)
	}

	if err := dev.Send(&cmd.LESetEventMask{LEEventMask: 0x000000000000001F}, nil); err != nil {
		return errors.Wrap(err, "can't set le event mask")
	}
	if err := dev.Send(&cmd.SetEventMask{EventMask: 0x3dbff807fffbffff}, nil); err != nil {
		return errors.Wrap(err, "can't set event mask")
	}

	fmt.Printf("up: %d acl buffers x %d bytes\n", aclCnt, aclLen)
	return nil
}

func capture(c *cli.Context) error {
	out := c.String("out")
	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "can't create trace file")
	}

	var sink snoop.Sink
	switch c.String("format") {
	case "btsnoop":
		if sink, err = snoop.NewBtsnoopWriter(f); err != nil {
			f.Close()
			return err
		}
	case "jsonl":
		sink = snoop.NewJsonlWriter(f)
	default:
		f.Close()
		return fmt.Errorf("unknown trace format %q", c.String("format"))
	}

	// The sink now owns f. Closing the device closes both.
	dev, err := open(c, hci.OptSnoopSink(sink))
	if err != nil {
		sink.Close()
		return err
	}
	defer dev.Close()

	var reports int32
	if c.Bool("scan") {
		dev.RegisterLeEventHandler(evt.LEAdvertisingReportSubCode, func(b []byte) error {
			atomic.AddInt32(&reports, 1)
			return nil
		})
		scanParams := &cmd.LESetScanParameters{
			LEScanType:     0x01,
			LEScanInterval: 0x0004,
			LEScanWindow:   0x0004,
		}
		if err := dev.Send(scanParams, nil); err != nil {
			return errors.Wrap(err, "can't set scan parameters")
		}
		if err := dev.Send(&cmd.LESetScanEnable{LEScanEnable: 1, FilterDuplicates: 1}, nil); err != nil {
			return errors.Wrap(err, "can't enable scanning")
		}
	}

	fmt.Printf("Recording to %s for %s...\n", out, c.Duration("duration"))
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-time.After(c.Duration("duration")):
	case <-sigs:
		fmt.Printf("\n(interrupted)\n")
	}
	signal.Stop(sigs)

	if c.Bool("scan") {
		_ = dev.Send(&cmd.LESetScanEnable{LEScanEnable: 0}, nil)
		fmt.Printf("saw %d advertising reports\n", atomic.LoadInt32(&reports))
	}
	return nil
}
