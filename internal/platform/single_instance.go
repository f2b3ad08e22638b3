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

const activateMessage = "activate"

// InstanceGuard holds the single-instance lock. A second launch asks the
// holder to bring its face forward instead of opening another one.
type InstanceGuard struct {
	listener net.Listener
	address  string

	mu         sync.Mutex
	onActivate func()
	done       chan struct{}
}

// AcquireSingleInstance attempts to bind a deterministic localhost port.
// When the port is taken it signals the running instance and returns
// ErrAlreadyRunning.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := fmt.Sprintf("127.0.0.1:%d", portFromName(appName))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		signalRunning(address)
		return nil, ErrAlreadyRunning
	}
	guard := &InstanceGuard{listener: listener, address: address, done: make(chan struct{})}
	go guard.serve()
	return guard, nil
}

// SetOnActivate registers the callback run when another launch is refused.
// It runs on the guard's goroutine.
func (guard *InstanceGuard) SetOnActivate(callback func()) {
	guard.mu.Lock()
	guard.onActivate = callback
	guard.mu.Unlock()
}

// Release frees the single instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	<-guard.done
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
	defer close(guard.done)
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
	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil || strings.TrimSpace(line) != activateMessage {
		return
	}
	guard.mu.Lock()
	callback := guard.onActivate
	guard.mu.Unlock()
	if callback != nil {
		callback()
	}
}

func signalRunning(address string) {
	conn, err := net.DialTimeout("tcp", address, time.Second)
	if err != nil {
		return
	}
	defer conn.Close()
	_, _ = conn.Write([]byte(activateMessage + "\n"))
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
