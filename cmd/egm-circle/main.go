// Command egm-circle streams pose targets that move the robot tool in a
// horizontal circle around its starting position. The first received feedback
// pose becomes the circle center; every subsequent status message is answered
// with the next target on the circle.
//
// The robot must be running an EGM position guidance RAPID program for the
// targets to take effect. Start with a small radius.
package main

import (
	"context"
	"flag"
	"log"
	"math"
	"os/signal"
	"syscall"
	"time"

	"github.com/robohouse-delft/abbegm"
	"github.com/robohouse-delft/abbegm/egmpb"
)

var (
	bind   = flag.String("bind", ":6510", "Local address to listen on")
	radius = flag.Float64("radius", 10, "Circle radius in mm")
	period = flag.Duration("period", 10*time.Second, "Time for one full revolution")
	ahead  = flag.Duration("ahead", 20*time.Millisecond, "How far ahead of the feedback time to place each target")
)

func main() {
	flag.Parse()
	if *radius <= 0 {
		log.Fatal("Radius must be positive")
	}
	if *period <= 0 {
		log.Fatal("Period must be positive")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	peer, err := abbegm.BindAsync(*bind)
	if err != nil {
		log.Fatalf("Failed to bind: %v", err)
	}
	defer peer.Close()
	log.Printf("Waiting for EGM status messages on %s", peer.LocalAddr())

	var center *egmpb.EgmPose
	start := time.Now()

	for {
		msg, err := peer.Recv(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Printf("Shutting down")
				return
			}
			log.Fatalf("Receive error: %v", err)
		}

		pose, ok := msg.FeedbackPose()
		if !ok || pose.Pos == nil || pose.Orient == nil {
			log.Printf("Status message without full feedback pose, skipping")
			continue
		}
		clock, ok := msg.FeedbackTime()
		if !ok {
			log.Printf("Status message without feedback time, skipping")
			continue
		}

		if center == nil {
			center = pose
			start = time.Now()
			log.Printf("Circle center at %v mm, radius %.1f mm", pose.Pos.AsMM(), *radius)
		}

		// Keep the starting orientation, move the position along the
		// circle. The circle passes through the center point itself so
		// the motion starts without a jump.
		angle := 2 * math.Pi * float64(time.Since(start)) / float64(*period)
		target := egmpb.NewPose(
			egmpb.CartesianFromMM(
				center.Pos.X + *radius*(math.Cos(angle)-1),
				center.Pos.Y + *radius*math.Sin(angle),
				center.Pos.Z,
			),
			center.Orient,
		)

		cmd := egmpb.PoseTarget(peer.SequenceNumber(), target, clock.Add(*ahead))
		if err := peer.Send(ctx, cmd); err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Fatalf("Send error: %v", err)
		}
	}
}
