package platform

import (
	"bufio"
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"strings"
	"sync"
	"time"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	raiseCommand = "raise"
	dialTimeout  = time.Second
)

// InstanceGuard holds the single-instance lock and listens for raise requests
// from later launches.
type InstanceGuard struct {
	listener net.Listener
	address  string
	onRaise  func()
	wg       sync.WaitGroup
}

// AcquireSingleInstance binds a deterministic localhost port derived from
// appName. onRaise runs, on the guard's goroutine, whenever a later launch
// calls SignalRunning.
func AcquireSingleInstance(appName string, onRaise func()) (*InstanceGuard, error) {
	address := instanceAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlreadyRunning, err)
	}
	guard := &InstanceGuard{listener: listener, address: address, onRaise: onRaise}
	guard.wg.Add(1)
	go guard.serve()
	return guard, nil
}

// SignalRunning asks the instance holding the lock to raise its window.
func SignalRunning(appName string) error {
	conn, err := net.DialTimeout("tcp", instanceAddress(appName), dialTimeout)
	if err != nil {
		return fmt.Errorf("signal running instance: %w", err)
	}
	defer conn.Close()
	_ = conn.SetWriteDeadline(time.Now().Add(dialTimeout))
	if _, err := fmt.Fprintln(conn, raiseCommand); err != nil {
		return fmt.Errorf("signal running instance: %w", err)
	}
	return nil
}

// Release frees the single instance lock and waits for the listener to stop.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	guard.wg.Wait()
	return err
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

func (guard *InstanceGuard) serve() {
	defer guard.wg.Done()
	for {
		conn, err := guard.listener.Accept()
		if err != nil {
			return
		}
		guard.handle(conn)
	}
}

func (guard *InstanceGuard) handle(conn net.Conn) {
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(dialTimeout))
	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil && line == "" {
		return
	}
	if strings.TrimSpace(line) == raiseCommand && guard.onRaise != nil {
		guard.onRaise()
	}
}

func instanceAddress(appName string) string {
	return fmt.Sprintf("127.0.0.1:%d", portFromName(appName))
}

func portFromName(appName string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxPort - minPort + 1
	return minPort + int(hash.Sum32()%uint32(rangeSize))
}
