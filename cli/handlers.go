package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"i4.energy/across/bldccli/bldc"
)

const (
	msgNotRecognised   = "Command not recognised.  Enter 'help' to view a list of available commands.\r\n\r\n"
	msgIncorrectParams = "Incorrect command parameter(s).  Enter \"help\" to view a list of available commands.\r\n\r\n"

	msgDutyBelowZero    = "ERROR: Make sure duty cycle is above 0%.\r\n\r\n"
	msgDutyAboveHundred = "ERROR: Make sure duty cycle is below 100%.\r\n\r\n"
	msgBadDirection     = "ERROR: Parameter to 'sdir' not valid.\r\n\r\n"
	msgBadMode          = "ERROR: Parameter to 'mode' not valid.\r\n\r\n"
	msgAngleZero        = "ERROR: Parameter to 'sca' not valid.\r\n\r\n"
	msgAngleNegative    = "ERROR: Please make sure commutation angle is positive. Use 'sdir' command to change direction of rotation.\r\n\r\n"
	msgAngleTooLarge    = "ERROR: Please make sure commutation angle is less than 360.\r\n\r\n"
	msgVelocityNegative = "ERROR: Velocity set point has to be >= 0.\r\n\r\n"
	fmtVelocityTooHigh  = "ERROR: Velocity set point has to be lower than %f\r\n\r\n"
	fmtSendFailed       = "ERROR: Could not send command %s to motor\r\n\r\n"
)

// motorCommands holds what the motor command handlers share. Validation
// errors go straight to term; queue failures go to the dispatcher's output
// buffer.
type motorCommands struct {
	queue   Submitter
	term    io.Writer
	maxRPM  float64
	logger  *slog.Logger
	metrics *Metrics
}

// descriptors returns the motor commands in registration order.
func (m *motorCommands) descriptors() []Descriptor {
	return []Descriptor{
		{Name: "on", Help: "on : Turns the BLDC motor on\r\n", Params: 0, Handler: m.simple(bldc.On)},
		{Name: "off", Help: "off : Turns the BLDC motor off\r\n", Params: 0, Handler: m.simple(bldc.Off)},
		{Name: "sduty", Help: "sduty : Sets the duty cycle of the motor (0-100%)\r\n", Params: 1, Handler: HandlerFunc(m.setDuty)},
		{Name: "sdir", Help: "sdir : (set-direction) Sets the direction of the motor\r\nParameters: cw, acw\r\n", Params: 1, Handler: HandlerFunc(m.setDirection)},
		{Name: "mode", Help: "mode : Determines the control mode\r\nParameters: ht, et, es, sm\r\n", Params: 1, Handler: HandlerFunc(m.setControlMode)},
		{Name: "sync", Help: "sync : Orientates the motor to a known position in the electrical cycle.\r\n", Params: 0, Handler: m.simple(bldc.SyncMotor)},
		{Name: "sca", Help: "sca : Sets the commutation angle (0-360 degrees, exclusive).\r\n", Params: 1, Handler: HandlerFunc(m.setCommutationAngle)},
		{Name: "evc", Help: "evc : Enables velocity control.\r\n", Params: 0, Handler: m.simple(bldc.EnableVelocityControl)},
		{Name: "sv", Help: "sv : Changes the velocity set-point (RPM).\r\n", Params: 1, Handler: HandlerFunc(m.setVelocity)},
	}
}

// simple builds a handler for a parameterless command.
func (m *motorCommands) simple(word bldc.CommandWord) Handler {
	return HandlerFunc(func(ctx context.Context, _ []byte, out *OutputBuffer) Outcome {
		m.submit(ctx, bldc.Message{Command: word}, out)
		return Done
	})
}

func (m *motorCommands) setDuty(ctx context.Context, line []byte, out *OutputBuffer) Outcome {
	param, _ := Parameter(line, 1)
	duty := bldc.Atof(param)

	switch {
	case duty < 0:
		m.reject("sduty", msgDutyBelowZero)
		return Done
	case duty > 100:
		m.reject("sduty", msgDutyAboveHundred)
		return Done
	}

	m.submit(ctx, bldc.Message{Command: bldc.SetDuty, Value1: float32(duty)}, out)
	return Done
}

func (m *motorCommands) setDirection(ctx context.Context, line []byte, out *OutputBuffer) Outcome {
	param, _ := Parameter(line, 1)
	dir, ok := bldc.ParseDirection(param)
	if !ok {
		m.reject("sdir", msgBadDirection)
		return Done
	}

	m.submit(ctx, bldc.Message{Command: bldc.SetDirection, Value1: float32(dir)}, out)
	return Done
}

func (m *motorCommands) setControlMode(ctx context.Context, line []byte, out *OutputBuffer) Outcome {
	param, _ := Parameter(line, 1)
	m.logger.Debug("Set mode command received", "param", string(param))

	mode, ok := bldc.ParseControlMode(param)
	if !ok {
		m.reject("mode", msgBadMode)
		return Done
	}

	m.submit(ctx, bldc.Message{Command: bldc.SetControlMode, Value1: float32(mode)}, out)
	return Done
}

// setCommutationAngle accepts angles in (0, 360). Rejected angles are not
// sent to the motor task.
func (m *motorCommands) setCommutationAngle(ctx context.Context, line []byte, out *OutputBuffer) Outcome {
	param, _ := Parameter(line, 1)
	angle := bldc.Atof(param)
	m.logger.Debug("Set commutation angle command received", "angle", angle)

	switch {
	case angle == 0:
		m.reject("sca", msgAngleZero)
		return Done
	case angle < 0:
		m.reject("sca", msgAngleNegative)
		return Done
	case angle >= 360:
		m.reject("sca", msgAngleTooLarge)
		return Done
	}

	m.submit(ctx, bldc.Message{Command: bldc.SetCommutationAngle, Value1: float32(angle)}, out)
	return Done
}

func (m *motorCommands) setVelocity(ctx context.Context, line []byte, out *OutputBuffer) Outcome {
	param, _ := Parameter(line, 1)
	rpm := bldc.Atof(param)

	switch {
	case rpm < 0:
		m.reject("sv", msgVelocityNegative)
		return Done
	case rpm > m.maxRPM:
		m.metrics.validationError("sv")
		out.Printf(fmtVelocityTooHigh, m.maxRPM)
		return Done
	}

	m.submit(ctx, bldc.Message{Command: bldc.SetVelocity, Value1: float32(rpm)}, out)
	return Done
}

// reject writes a validation error directly to the terminal.
func (m *motorCommands) reject(cmd, msg string) {
	m.metrics.validationError(cmd)
	if _, err := io.WriteString(m.term, msg); err != nil {
		m.logger.Warn("Failed to write to terminal", "error", err)
	}
}

// submit offers msg to the motor task. Success is silent.
func (m *motorCommands) submit(ctx context.Context, msg bldc.Message, out *OutputBuffer) {
	err := m.queue.Submit(ctx, msg)
	m.metrics.submission(msg.Command.String(), err == nil)
	if err == nil {
		m.logger.Debug("Command submitted", "command", msg.Command.String(), "value", msg.Value1)
		return
	}

	if errors.Is(err, ErrQueueFull) {
		m.logger.Warn("Motor command queue full", "command", msg.Command.String(), "error", err)
	} else {
		m.logger.Error("Failed to submit command", "command", msg.Command.String(), "error", err)
	}
	out.Printf(fmtSendFailed, msg.Command)
}

// helpCommand lists the registry, one command per invocation.
type helpCommand struct {
	registry *Registry
	next     int
}

func helpDescriptor(h *helpCommand) Descriptor {
	return Descriptor{
		Name:    "help",
		Help:    "help : Lists all the registered commands\r\n",
		Params:  0,
		Handler: h,
	}
}

func (h *helpCommand) Handle(_ context.Context, _ []byte, out *OutputBuffer) Outcome {
	if h.registry == nil || h.registry.Len() == 0 {
		return Done
	}
	if h.next == 0 {
		out.WriteString("\r\n")
	}

	out.WriteString(h.registry.At(h.next).Help)
	h.next++
	if h.next < h.registry.Len() {
		return MoreOutputPending
	}

	h.next = 0
	out.WriteString("\r\n")
	return Done
}

// Abort rewinds the listing when the dispatcher stops early.
func (h *helpCommand) Abort() {
	h.next = 0
}
