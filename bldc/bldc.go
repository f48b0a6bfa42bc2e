// Package bldc defines the command messages exchanged between the text
// command front-end and the motor-control task.
package bldc

import "fmt"

// CommandWord identifies what the motor task should do with a Message.
type CommandWord int

const (
	On CommandWord = iota
	Off
	SetDuty
	SetDirection
	SetControlMode
	SyncMotor
	SetCommutationAngle
	EnableVelocityControl
	SetVelocity
)

func (c CommandWord) String() string {
	switch c {
	case On:
		return "BLDC_ON"
	case Off:
		return "BLDC_OFF"
	case SetDuty:
		return "BLDC_SET_DUTY"
	case SetDirection:
		return "BLDC_SET_DIRECTION"
	case SetControlMode:
		return "BLDC_SET_CONTROL_MODE"
	case SyncMotor:
		return "BLDC_SYNC_MOTOR"
	case SetCommutationAngle:
		return "BLDC_SET_COMMUTATION_ANGLE"
	case EnableVelocityControl:
		return "BLDC_ENABLE_VELOCITY_CONTROL"
	case SetVelocity:
		return "BLDC_SET_VELOCITY"
	default:
		return fmt.Sprintf("BLDC_UNKNOWN(%d)", int(c))
	}
}

// Direction of rotation. Sent as Message.Value1.
type Direction int

const (
	Clockwise Direction = iota
	AntiClockwise
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "cw"
	case AntiClockwise:
		return "acw"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ControlMode selects the commutation strategy. Sent as Message.Value1.
type ControlMode int

const (
	HallEffectTrapezoidal ControlMode = iota
	EncoderTrapezoidal
	EncoderSinusoidal
	StepMode
)

func (m ControlMode) String() string {
	switch m {
	case HallEffectTrapezoidal:
		return "ht"
	case EncoderTrapezoidal:
		return "et"
	case EncoderSinusoidal:
		return "es"
	case StepMode:
		return "sm"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Message is the fixed-shape record placed on the motor task's queue.
//
// The meaning of Value1 depends on Command: duty cycle in percent,
// a Direction or ControlMode cast to float, commutation angle in degrees,
// velocity set-point in RPM, or unused.
type Message struct {
	Command CommandWord
	Value1  float32
}

func (m Message) String() string {
	return fmt.Sprintf("%s(%g)", m.Command, m.Value1)
}
