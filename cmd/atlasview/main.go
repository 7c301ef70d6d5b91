package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"log"
	"os"
	"strconv"

	"isoatlas/internal/atlas"
	"isoatlas/internal/server"
)

const (
	defaultAddr = ":2222"
	hostKeyPath = "host_key"
	defaultB    = 8
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	if len(os.Args) < 2 {
		log.Fatalf("Usage: atlasview <assets-dir> [B]")
	}
	assetsDir := os.Args[1]
	b := defaultB
	if len(os.Args) > 2 {
		v, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatalf("Bad half-size %q: %v", os.Args[2], err)
		}
		b = v
	}

	if err := ensureHostKey(hostKeyPath); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	a, err := atlas.Build(b, atlas.LoadSources(assetsDir), assetsDir)
	if err != nil {
		log.Fatalf("Atlas build failed: %v", err)
	}
	log.Printf("Atlas ready: %dx%d px, %d substitutions", a.Img.W, a.Img.H, a.Substituted)

	listenAddr := defaultAddr
	if port := os.Getenv("PORT"); port != "" {
		listenAddr = ":" + port
	}
	srv := server.NewSSHServer(listenAddr, hostKeyPath, a)
	log.Printf("Starting atlas browser; connect with: ssh -p %s localhost", listenAddr[1:])
	if err := srv.Start(); err != nil {
		log.Fatalf("SSH server error: %v", err)
	}
}

func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // key already exists
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	pemBlock := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyBytes,
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, pemBlock)
}
