package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"sync"
	"time"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// InstanceLock holds a deterministic localhost port for the lifetime of the
// process. Later launches connect to it to ask this instance to come forward.
type InstanceLock struct {
	listener net.Listener
	address  string
	wg       sync.WaitGroup
}

// AcquireInstanceLock binds the port derived from appName.
func AcquireInstanceLock(appName string) (*InstanceLock, error) {
	address := instanceAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w on %s", ErrAlreadyRunning, address)
	}
	return &InstanceLock{listener: listener, address: address}, nil
}

// Serve calls onActivate for every connection from a later launch. It returns
// immediately; the accept loop stops on Release.
func (lock *InstanceLock) Serve(onActivate func()) {
	lock.wg.Add(1)
	go func() {
		defer lock.wg.Done()
		for {
			conn, err := lock.listener.Accept()
			if err != nil {
				return
			}
			_ = conn.Close()
			if onActivate != nil {
				onActivate()
			}
		}
	}()
}

// Release frees the lock and waits for the accept loop to exit.
func (lock *InstanceLock) Release() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	err := lock.listener.Close()
	lock.wg.Wait()
	return err
}

// Address returns the bound address.
func (lock *InstanceLock) Address() string {
	if lock == nil {
		return ""
	}
	return lock.address
}

// ActivateRunningInstance asks the instance holding appName's lock to come forward.
func ActivateRunningInstance(appName string, timeout time.Duration) error {
	conn, err := net.DialTimeout("tcp", instanceAddress(appName), timeout)
	if err != nil {
		return fmt.Errorf("activate running instance: %w", err)
	}
	return conn.Close()
}

func instanceAddress(appName string) string {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxPort - minPort + 1
	return fmt.Sprintf("127.0.0.1:%d", minPort+int(hash.Sum32()%uint32(rangeSize)))
}
