// Package egmpb contains the protobuf messages exchanged with an ABB robot
// controller over the EGM (externally-guided motion) UDP interface.
//
// The message layout mirrors ABB's egm.proto (proto2). The schema is small
// and frozen on the controller side, so the codec is maintained by hand on
// top of google.golang.org/protobuf/encoding/protowire instead of carrying
// generated code; field numbers and wire types match the schema exactly.
//
// Unless noted otherwise, distances are in millimeters and angles in degrees.
// That is what the robot controller expects.
package egmpb
