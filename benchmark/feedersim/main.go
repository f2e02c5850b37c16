package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

var maxClients int = 1000
var actionsPerClient int = 10
var httpHostPort string = "127.0.0.1:3000"
var hardwareKey string = "change-me"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	startTime := time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxClients; i++ {
		i := i
		wg.Add(1)
		go func() {
			for j := 0; j < actionsPerClient; j++ {
				doAction()
			}
			fmt.Printf("\rclient %v done", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime := time.Since(startTime)

	totalActions := maxClients * actionsPerClient
	fmt.Printf(
		"\n\rdid %v hardware actions: used time=%v seconds, throughput=%v action/second\n",
		totalActions, usedTime.Seconds(), float64(totalActions)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func doAction() {
	if flipCoin() {
		postTelemetry()
	} else {
		getActiveSchedules()
	}
}

func postTelemetry() {
	payload := map[string]any{
		"weight":  int(rnd.Int31n(1001)),
		"battery": int(rnd.Int31n(101)),
	}
	// Occasionally report an autonomous dispense so the ledger path gets
	// exercised too.
	if rnd.Int31n(10) == 0 {
		payload["dispensed"] = int(rnd.Int31n(5)) + 1
	}

	jsonData, _ := json.Marshal(payload)
	req, err := http.NewRequest(http.MethodPost,
		fmt.Sprintf("http://%s/api/hardware/update", httpHostPort), bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", hardwareKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusTooManyRequests {
		panic(fmt.Sprintf("unexpected status from hardware update: %v", resp.Status))
	}
}

func getActiveSchedules() {
	req, err := http.NewRequest(http.MethodGet,
		fmt.Sprintf("http://%s/api/schedules/active", httpHostPort), nil)
	if err != nil {
		panic(err)
	}
	req.Header.Set("X-API-Key", hardwareKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusTooManyRequests {
		panic(fmt.Sprintf("unexpected status from active schedules: %v", resp.Status))
	}
}
