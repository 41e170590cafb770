package server

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	gossh "golang.org/x/crypto/ssh"
)

func TestEnsureHostKeyGenerates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	if err := EnsureHostKey(path); err != nil {
		t.Fatalf("EnsureHostKey: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read key: %v", err)
	}
	signer, err := gossh.ParsePrivateKey(data)
	if err != nil {
		t.Fatalf("parse key: %v", err)
	}
	if got := signer.PublicKey().Type(); got != gossh.KeyAlgoED25519 {
		t.Errorf("key type = %s, want %s", got, gossh.KeyAlgoED25519)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("key mode = %o, want 600", perm)
	}
}

func TestEnsureHostKeyKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	if err := EnsureHostKey(path); err != nil {
		t.Fatalf("EnsureHostKey: %v", err)
	}
	before, _ := os.ReadFile(path)

	if err := EnsureHostKey(path); err != nil {
		t.Fatalf("second EnsureHostKey: %v", err)
	}
	after, _ := os.ReadFile(path)
	if !bytes.Equal(before, after) {
		t.Error("existing host key was overwritten")
	}
}
