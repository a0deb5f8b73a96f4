// Command egm-print listens for EGM status messages from a robot controller
// and prints a summary of each received frame. Useful to verify controller
// configuration before wiring up a control loop.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/robohouse-delft/abbegm"
)

var (
	bind        = flag.String("bind", ":6510", "Local address to listen on")
	showPlanned = flag.Bool("planned", false, "Also print the planned position stream")
)

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	peer, err := abbegm.BindAsync(*bind)
	if err != nil {
		log.Fatalf("Failed to bind: %v", err)
	}
	defer peer.Close()
	log.Printf("Listening for EGM status messages on %s", peer.LocalAddr())

	for {
		msg, err := peer.Recv(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Printf("Shutting down")
				return
			}
			log.Printf("Receive error: %v", err)
			continue
		}

		seq, _ := msg.SequenceNumber()
		tm, _ := msg.TimestampMS()
		log.Printf("Frame seq=%d tm=%dms motors=%t rapid=%t", seq, tm, boolOf(msg.MotorsEnabled), boolOf(msg.RapidRunning))

		if joints, ok := msg.FeedbackJoints(); ok {
			log.Printf("  feedback joints: %v", joints)
		}
		if pose, ok := msg.FeedbackPose(); ok {
			if pose.Pos != nil {
				log.Printf("  feedback position: %v mm", pose.Pos.AsMM())
			}
			if pose.Orient != nil {
				log.Printf("  feedback orientation: %v", pose.Orient.AsWXYZ())
			}
		}
		if *showPlanned {
			if joints, ok := msg.PlannedJoints(); ok {
				log.Printf("  planned joints: %v", joints)
			}
			if pose, ok := msg.PlannedPose(); ok && pose.Pos != nil {
				log.Printf("  planned position: %v mm", pose.Pos.AsMM())
			}
		}
	}
}

func boolOf(f func() (bool, bool)) bool {
	v, ok := f()
	return ok && v
}
