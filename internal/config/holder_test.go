package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
)

func holderFixture(t *testing.T) (*Holder, string) {
	t.Helper()

	dir := writeConfigDir(t, map[string]string{"default.toml": minimalConfig})

	initial, err := ReadConfig(dir)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	return NewHolder(initial, dir), dir
}

func rewriteDefault(t *testing.T, dir, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, "default.toml"), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}
}

func TestHolderReload(t *testing.T) {
	h, dir := holderFixture(t)

	if got := h.Get().Derived.URL; got != "https://video.example.com" {
		t.Fatalf("initial URL = %v", got)
	}

	rewriteDefault(t, dir, `
[webserver]
hostname = "other.example.com"
port = 9000

[database]
engine = "sqlite"

[admin]
email = "admin@example.com"
`)

	if err := h.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	snap := h.Get()
	if snap.Derived.URL != "http://other.example.com:9000" {
		t.Errorf("URL after reload = %v", snap.Derived.URL)
	}

	if snap.Config.Webserver.Hostname != "other.example.com" {
		t.Errorf("Hostname after reload = %v", snap.Config.Webserver.Hostname)
	}
}

func TestHolderReloadKeepsOldOnFailure(t *testing.T) {
	h, dir := holderFixture(t)
	before := h.Get()

	rewriteDefault(t, dir, "this is [not valid toml")

	if err := h.Reload(); err == nil {
		t.Fatal("Reload() should fail on invalid toml")
	}

	if got := h.Get(); !reflect.DeepEqual(got, before) {
		t.Error("failed reload must keep the previous snapshot")
	}
}

func TestHolderReloadKeepsOldOnValidationFailure(t *testing.T) {
	h, dir := holderFixture(t)
	before := h.Get()

	// parses fine but fails validation (no admin email)
	rewriteDefault(t, dir, `
[webserver]
hostname = "video.example.com"
port = 443

[database]
engine = "sqlite"
`)

	err := h.Reload()
	if !errors.Is(err, ErrEmptyAdminEmail) {
		t.Fatalf("Reload() error = %v, want ErrEmptyAdminEmail", err)
	}

	if got := h.Get(); !reflect.DeepEqual(got, before) {
		t.Error("failed reload must keep the previous snapshot")
	}
}

// Concurrent readers must always observe one snapshot wholly. The derived
// URL is recomputed from the config fields, so a mixed snapshot would show
// a URL that does not match its own webserver block.
func TestHolderReloadAtomic(t *testing.T) {
	h, dir := holderFixture(t)

	var wg sync.WaitGroup

	stop := make(chan struct{})

	for i := 0; i < 4; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for {
				select {
				case <-stop:
					return
				default:
				}

				snap := h.Get()

				want := WebserverURL(
					snap.Config.Webserver.HTTPS,
					snap.Config.Webserver.Hostname,
					snap.Config.Webserver.Port,
				)
				if snap.Derived.URL != want {
					t.Errorf("torn snapshot: derived %v, config says %v", snap.Derived.URL, want)
					return
				}
			}
		}()
	}

	for i := 0; i < 20; i++ {
		hostname := "a.example.com"
		if i%2 == 1 {
			hostname = "b.example.com"
		}

		rewriteDefault(t, dir, `
[webserver]
hostname = "`+hostname+`"
port = 9000

[database]
engine = "sqlite"

[admin]
email = "admin@example.com"
`)

		if err := h.Reload(); err != nil {
			t.Fatalf("Reload() error = %v", err)
		}
	}

	close(stop)
	wg.Wait()
}

func TestHolderListener(t *testing.T) {
	h, dir := holderFixture(t)

	ch := make(chan Snapshot, 1)
	h.RegisterListener(ch)

	rewriteDefault(t, dir, `
[webserver]
hostname = "listener.example.com"
port = 443
https = true

[database]
engine = "sqlite"

[admin]
email = "admin@example.com"
`)

	if err := h.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	select {
	case snap := <-ch:
		if snap.Config.Webserver.Hostname != "listener.example.com" {
			t.Errorf("listener got hostname %v", snap.Config.Webserver.Hostname)
		}
	default:
		t.Fatal("listener did not receive the new snapshot")
	}
}
