// Package abbegm implements the communication layer of ABB externally-guided
// motion (EGM).
//
// EGM is an interface of ABB robot controllers for smooth control of a
// robotic arm from an external PC. The controller streams status messages
// over UDP on a fixed cycle of a few milliseconds, and the peer answers with
// command messages carrying a target in joint or cartesian space. The
// Externally Guided Motion option (689-1) must be installed on the robot
// controller.
//
// Use [Bind] for a blocking peer with receive timeouts, or [BindAsync] for a
// context-driven peer. Both learn the controller's address from the first
// received datagram; the protocol has no handshake.
//
// A receive always hands back the most recently arrived status message: the
// backlog queued on the socket is drained without blocking first, so a caller
// that briefly fell behind the control cycle never acts on stale state.
//
// # Warning
//
// Industrial robots are dangerous machines. Sending poses to the robot using
// EGM may cause it to perform dangerous motions that could lead to damage,
// injuries or even death. Always take appropriate precautions. Make sure
// there are no persons or animals in reach of the robot when it is
// operational and always keep an emergency stop at hand when testing.
//
// # Units and rotation conventions
//
// Unless specified differently, all distances and positions are in
// millimeters and all angles are in degrees. This may be somewhat odd, but it
// is what the robot controller expects. Prefer unit quaternions over Euler
// angles to represent 3D orientations.
package abbegm
