// Command egm-replay replays EGM status traffic from a packet capture to a
// UDP destination, preserving the original inter-packet timing. This makes it
// possible to exercise an EGM peer against recorded robot traffic without a
// robot controller.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

var (
	pcapFile = flag.String("pcap", "", "PCAP file to replay (required)")
	target   = flag.String("target", "127.0.0.1:6510", "UDP destination for the replayed datagrams")
	port     = flag.Int("port", 6510, "Only replay UDP packets with this destination port")
	speed    = flag.Float64("speed", 1.0, "Replay speed multiplier (1.0 = original timing)")
	loop     = flag.Bool("loop", false, "Restart from the beginning when the capture ends")
)

func main() {
	flag.Parse()
	if *pcapFile == "" {
		log.Fatal("A PCAP file is required (-pcap)")
	}
	if *speed <= 0 {
		log.Fatal("Speed multiplier must be positive")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	raddr, err := net.ResolveUDPAddr("udp", *target)
	if err != nil {
		log.Fatalf("Invalid target address %s: %v", *target, err)
	}
	conn, err := net.DialUDP("udp", nil, raddr)
	if err != nil {
		log.Fatalf("Failed to dial %s: %v", *target, err)
	}
	defer conn.Close()

	for {
		sent, err := replayOnce(ctx, conn)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				log.Printf("Replay interrupted")
				return
			}
			log.Fatalf("Replay failed: %v", err)
		}
		log.Printf("Replayed %d datagrams from %s", sent, *pcapFile)
		if !*loop || ctx.Err() != nil {
			return
		}
	}
}

// replayOnce streams the capture to conn a single time, sleeping between
// packets to reproduce the captured pacing.
func replayOnce(ctx context.Context, conn *net.UDPConn) (int, error) {
	f, err := os.Open(*pcapFile)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	reader, err := pcapgo.NewReader(f)
	if err != nil {
		return 0, err
	}

	sent := 0
	var lastCapture time.Time
	for {
		data, ci, err := reader.ReadPacketData()
		if err == io.EOF {
			return sent, nil
		}
		if err != nil {
			return sent, err
		}

		packet := gopacket.NewPacket(data, reader.LinkType(), gopacket.Default)
		udpLayer := packet.Layer(layers.LayerTypeUDP)
		if udpLayer == nil {
			continue
		}
		udp := udpLayer.(*layers.UDP)
		if int(udp.DstPort) != *port || len(udp.Payload) == 0 {
			continue
		}

		if !lastCapture.IsZero() {
			delay := time.Duration(float64(ci.Timestamp.Sub(lastCapture)) / *speed)
			if delay > 0 {
				select {
				case <-ctx.Done():
					return sent, ctx.Err()
				case <-time.After(delay):
				}
			}
		}
		lastCapture = ci.Timestamp

		if _, err := conn.Write(udp.Payload); err != nil {
			return sent, err
		}
		sent++
	}
}
