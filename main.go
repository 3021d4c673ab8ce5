package main

import (
	"fmt"
	"os"

	auction "housebid/internal/auctionService"
	"housebid/internal/events"
	"housebid/internal/ledger"
	"housebid/internal/server"
	"housebid/internal/verifier"
	"housebid/utils"
)

func main() {

	propertyLedger := ledger.NewMemoryLedger()

	// The fixture verifier stands in for the external
	// confidential-computation service in local runs.
	fixtureVerifier := verifier.NewFixtureVerifier()
	prepopulateFixtures(fixtureVerifier)

	notifier := setupNotifier()

	auctionSvc := auction.NewAuctionService(propertyLedger, fixtureVerifier, auction.SystemClock{}, notifier)

	router := server.SetupRouter(auctionSvc)

	port := getPort()
	fmt.Printf("Starting auction server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// setupNotifier publishes events to NATS when NATS_URL is set, and to
// the structured log otherwise.
func setupNotifier() events.Notifier {
	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		return events.NewLogNotifier()
	}

	notifier, err := events.NewNATSNotifier(natsURL)
	if err != nil {
		utils.Warn("NATS unavailable, falling back to log notifier", map[string]any{
			"nats_url": natsURL,
			"error":    err.Error(),
		})
		return events.NewLogNotifier()
	}

	utils.Info("publishing auction events to NATS", map[string]any{"nats_url": natsURL})
	return notifier
}

// prepopulateFixtures registers sample ciphertexts so local clients can
// submit and reveal bids against known handles.
func prepopulateFixtures(v *verifier.FixtureVerifier) {
	for _, clear := range []uint64{150000, 225000, 310000} {
		handle := v.RegisterCiphertext(clear)
		utils.Info("registered fixture ciphertext", map[string]any{
			"handle":       handle,
			"clear_amount": clear,
		})
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
