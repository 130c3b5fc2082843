package shell

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"

	"github.com/nickboucher/abom/common"

	"github.com/google/shlex"
)

type Task struct {
	environment []string
	directory   string
	executable  string
	args        []string
}

// Split tokenizes a command line the way a POSIX shell would, including
// quoted arguments and escaped spaces.
func Split(commandline string) ([]string, error) {
	return shlex.Split(commandline)
}

func New(environment []string, directory string, task ...string) *Task {
	executable, args := task[0], task[1:]
	return &Task{
		environment: environment,
		directory:   directory,
		executable:  executable,
		args:        args,
	}
}

func (it *Task) execute(stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	common.Trace("Running %q with arguments %q", it.executable, it.args)
	command := exec.Command(it.executable, it.args...)
	command.Env = it.environment
	command.Dir = it.directory
	command.Stdin = stdin
	command.Stdout = stdout
	command.Stderr = stderr
	err := command.Start()
	if err != nil {
		return -500, err
	}
	common.Debug("PID #%d is %q.", command.Process.Pid, command)
	defer common.Debug("PID #%d finished.", command.Process.Pid)
	err = command.Wait()
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		return exit.ExitCode(), err
	}
	if err != nil {
		return -500, err
	}
	return 0, nil
}

// Execute runs the task with the caller's stdio. Interactive runs also get
// the caller's stdin.
func (it *Task) Execute(interactive bool) (int, error) {
	var stdin io.Reader = nil
	if interactive {
		stdin = os.Stdin
	}
	return it.execute(stdin, os.Stdout, os.Stderr)
}

// Observed runs the task with both output streams going into the sink.
func (it *Task) Observed(sink io.Writer, interactive bool) (int, error) {
	var stdin io.Reader = nil
	if interactive {
		stdin = os.Stdin
	}
	return it.execute(stdin, sink, sink)
}

// CaptureOutput runs the task capturing stdout; stderr stays visible.
func (it *Task) CaptureOutput() (string, int, error) {
	stdout := bytes.Buffer{}
	code, err := it.execute(nil, &stdout, os.Stderr)
	return stdout.String(), code, err
}

// CaptureStderr runs the task capturing stderr; stdout stays visible.
func (it *Task) CaptureStderr() (string, int, error) {
	stderr := bytes.Buffer{}
	code, err := it.execute(nil, os.Stdout, &stderr)
	return stderr.String(), code, err
}

// WithInterrupt shields the given action from SIGINT, so that an interrupt
// lands on the foreground child process first and the wrapper gets to
// finish its bookkeeping.
func WithInterrupt(task func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)
	defer signal.Stop(signals)
	done := make(chan bool)
	go func() {
		for {
			select {
			case <-signals:
				common.Debug("Ignoring interrupt, waiting for the child process.")
			case <-done:
				return
			}
		}
	}()
	defer close(done)
	task()
}
