package id3tag

import (
	"github.com/simonhull/id3tag/internal/frames"
)

// Frame is an alias to frames.Frame, the container that owns one field per
// registry descriptor.
type Frame = frames.Frame

// FrameOption is an alias to frames.Option.
type FrameOption = frames.Option

// WithEncoding presets a new frame's text encoding.
func WithEncoding(enc TextEncoding) FrameOption {
	return frames.WithEncoding(enc)
}

// NewFrame creates a frame with one field per registry descriptor for id.
func NewFrame(id FrameID, opts ...FrameOption) (*Frame, error) {
	return frames.New(id, opts...)
}

// FrameID is an alias to frames.FrameID.
type FrameID = frames.FrameID

// MaxFrameID returns the highest valid frame identifier.
func MaxFrameID() FrameID {
	return frames.MaxFrameID()
}

// ShortName returns the three-character v2.2 identifier of a frame.
func ShortName(id FrameID) string {
	return frames.ShortName(id)
}

// LongName returns the four-character v2.3/v2.4 identifier of a frame.
func LongName(id FrameID) string {
	return frames.LongName(id)
}

// Description returns the human-readable frame description.
func Description(id FrameID) string {
	return frames.Description(id)
}

// NumFields returns the number of field descriptors in a frame.
func NumFields(id FrameID) int {
	return frames.NumFields(id)
}

// FieldType returns the kind of field i of a frame.
func FieldType(id FrameID, i int) (FieldKind, error) {
	return frames.FieldType(id, i)
}

// FieldSize returns the fixed size of field i of a frame, 0 for variable
// fields.
func FieldSize(id FrameID, i int) (int, error) {
	return frames.FieldSize(id, i)
}

// FrameFieldFlags returns the flags of field i of a frame.
func FrameFieldFlags(id FrameID, i int) (FieldFlags, error) {
	return frames.FieldFlags(id, i)
}

// FrameByLongName resolves a four-character identifier to a FrameID.
func FrameByLongName(name string) (FrameID, bool) {
	return frames.ByLongName(name)
}

// FrameByShortName resolves a three-character v2.2 identifier to a FrameID.
func FrameByShortName(name string) (FrameID, bool) {
	return frames.ByShortName(name)
}

// Re-export all frame identifiers.
const (
	FrameUnknown = frames.FrameUnknown
	FrameAENC    = frames.FrameAENC
	FrameAPIC    = frames.FrameAPIC
	FrameASPI    = frames.FrameASPI
	FrameCOMM    = frames.FrameCOMM
	FrameCOMR    = frames.FrameCOMR
	FrameENCR    = frames.FrameENCR
	FrameEQU2    = frames.FrameEQU2
	FrameEQUA    = frames.FrameEQUA
	FrameETCO    = frames.FrameETCO
	FrameGEOB    = frames.FrameGEOB
	FrameGRID    = frames.FrameGRID
	FrameIPLS    = frames.FrameIPLS
	FrameLINK    = frames.FrameLINK
	FrameMCDI    = frames.FrameMCDI
	FrameMLLT    = frames.FrameMLLT
	FrameOWNE    = frames.FrameOWNE
	FramePCNT    = frames.FramePCNT
	FramePOPM    = frames.FramePOPM
	FramePOSS    = frames.FramePOSS
	FramePRIV    = frames.FramePRIV
	FrameRBUF    = frames.FrameRBUF
	FrameRVA2    = frames.FrameRVA2
	FrameRVAD    = frames.FrameRVAD
	FrameRVRB    = frames.FrameRVRB
	FrameSEEK    = frames.FrameSEEK
	FrameSIGN    = frames.FrameSIGN
	FrameSYLT    = frames.FrameSYLT
	FrameSYTC    = frames.FrameSYTC
	FrameTALB    = frames.FrameTALB
	FrameTBPM    = frames.FrameTBPM
	FrameTCOM    = frames.FrameTCOM
	FrameTCON    = frames.FrameTCON
	FrameTCOP    = frames.FrameTCOP
	FrameTDAT    = frames.FrameTDAT
	FrameTDEN    = frames.FrameTDEN
	FrameTDLY    = frames.FrameTDLY
	FrameTDOR    = frames.FrameTDOR
	FrameTDRC    = frames.FrameTDRC
	FrameTDRL    = frames.FrameTDRL
	FrameTDTG    = frames.FrameTDTG
	FrameTENC    = frames.FrameTENC
	FrameTEXT    = frames.FrameTEXT
	FrameTFLT    = frames.FrameTFLT
	FrameTIME    = frames.FrameTIME
	FrameTIPL    = frames.FrameTIPL
	FrameTIT1    = frames.FrameTIT1
	FrameTIT2    = frames.FrameTIT2
	FrameTIT3    = frames.FrameTIT3
	FrameTKEY    = frames.FrameTKEY
	FrameTLAN    = frames.FrameTLAN
	FrameTLEN    = frames.FrameTLEN
	FrameTMCL    = frames.FrameTMCL
	FrameTMED    = frames.FrameTMED
	FrameTMOO    = frames.FrameTMOO
	FrameTOAL    = frames.FrameTOAL
	FrameTOFN    = frames.FrameTOFN
	FrameTOLY    = frames.FrameTOLY
	FrameTOPE    = frames.FrameTOPE
	FrameTORY    = frames.FrameTORY
	FrameTOWN    = frames.FrameTOWN
	FrameTPE1    = frames.FrameTPE1
	FrameTPE2    = frames.FrameTPE2
	FrameTPE3    = frames.FrameTPE3
	FrameTPE4    = frames.FrameTPE4
	FrameTPOS    = frames.FrameTPOS
	FrameTPRO    = frames.FrameTPRO
	FrameTPUB    = frames.FrameTPUB
	FrameTRCK    = frames.FrameTRCK
	FrameTRDA    = frames.FrameTRDA
	FrameTRSN    = frames.FrameTRSN
	FrameTRSO    = frames.FrameTRSO
	FrameTSIZ    = frames.FrameTSIZ
	FrameTSOA    = frames.FrameTSOA
	FrameTSOP    = frames.FrameTSOP
	FrameTSOT    = frames.FrameTSOT
	FrameTSRC    = frames.FrameTSRC
	FrameTSSE    = frames.FrameTSSE
	FrameTSST    = frames.FrameTSST
	FrameTXXX    = frames.FrameTXXX
	FrameTYER    = frames.FrameTYER
	FrameUFID    = frames.FrameUFID
	FrameUSER    = frames.FrameUSER
	FrameUSLT    = frames.FrameUSLT
	FrameWCOM    = frames.FrameWCOM
	FrameWCOP    = frames.FrameWCOP
	FrameWOAF    = frames.FrameWOAF
	FrameWOAR    = frames.FrameWOAR
	FrameWOAS    = frames.FrameWOAS
	FrameWORS    = frames.FrameWORS
	FrameWPAY    = frames.FrameWPAY
	FrameWPUB    = frames.FrameWPUB
	FrameWXXX    = frames.FrameWXXX
)
