package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// credentials of one load test account
type account struct {
	Username string
	Token    string
}

type authResponse struct {
	AccessToken string `json:"access_token"`
}

type balanceResponse struct {
	Balance string `json:"balance"`
}

type depositRequest struct {
	Amount          string `json:"amount"`
	PaymentMethodID string `json:"payment_method_id"`
}

// requestResult contains metrics for a single request
type requestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// loadStats contains aggregated test statistics
type loadStats struct {
	mu                 sync.Mutex
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
}

func main() {
	concurrency := flag.Int("c", 10, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 200, "Total number of deposits to send")
	users := flag.Int("u", 3, "Number of accounts to spread the load across")
	keys := flag.Int("k", 20, "Distinct idempotency keys per account; repeats must be applied once")
	amount := flag.String("amount", "10.00", "Amount of every deposit")
	baseURL := flag.String("url", "http://localhost:8080/api", "Base URL of the API")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}
	runID := time.Now().UnixNano()

	accounts := make([]account, 0, *users)
	for i := 0; i < *users; i++ {
		acc, err := register(client, *baseURL, fmt.Sprintf("load%d_%d", runID%100000, i))
		if err != nil {
			fmt.Printf("Failed to register account %d: %v\n", i, err)
			return
		}
		accounts = append(accounts, acc)
	}

	initial := make(map[string]decimal.Decimal, len(accounts))
	for _, acc := range accounts {
		balance, err := getBalance(client, *baseURL, acc.Token)
		if err != nil {
			fmt.Printf("Failed to read balance of %s: %v\n", acc.Username, err)
			return
		}
		initial[acc.Username] = balance
	}

	fmt.Printf("Deposit load test across %d accounts, %d keys each\n", len(accounts), *keys)
	fmt.Printf("Concurrency: %d goroutines, total requests: %d\n", *concurrency, *totalRequests)

	stats := &loadStats{
		TotalRequests: *totalRequests,
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		ErrorCounts:   make(map[string]int),
	}

	// usedKeys records which keys reached the server per account
	usedKeys := make(map[string]map[int]bool, len(accounts))
	for _, acc := range accounts {
		usedKeys[acc.Username] = make(map[int]bool)
	}

	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	startTime := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < *concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}

				acc := accounts[rand.Intn(len(accounts))]
				key := rand.Intn(*keys)
				idempotencyKey := fmt.Sprintf("load-%d-%s-%d", runID, acc.Username, key)

				result := deposit(client, *baseURL, acc.Token, idempotencyKey, *amount)
				stats.record(result)
				if result.Success {
					stats.mu.Lock()
					usedKeys[acc.Username][key] = true
					stats.mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
	verifyBalances(client, *baseURL, accounts, initial, usedKeys, *amount)
}

func (s *loadStats) record(result requestResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if result.Success {
		s.SuccessfulRequests++
	} else {
		s.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		s.ErrorCounts[errMsg]++
	}
	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
}

func register(client *http.Client, baseURL, username string) (account, error) {
	body, _ := json.Marshal(map[string]string{
		"username": username,
		"email":    username + "@load.test",
		"password": "load-test-password",
	})

	resp, err := client.Post(baseURL+"/auth/register", "application/json", bytes.NewReader(body))
	if err != nil {
		return account{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return account{}, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var auth authResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return account{}, err
	}
	return account{Username: username, Token: auth.AccessToken}, nil
}

func getBalance(client *http.Client, baseURL, token string) (decimal.Decimal, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/wallet/balance", nil)
	if err != nil {
		return decimal.Zero, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return decimal.Zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var balance balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&balance); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(balance.Balance)
}

func deposit(client *http.Client, baseURL, token, idempotencyKey, amount string) requestResult {
	body, err := json.Marshal(depositRequest{Amount: amount, PaymentMethodID: "load-test"})
	if err != nil {
		return requestResult{Error: err}
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/wallet/add-funds", bytes.NewReader(body))
	if err != nil {
		return requestResult{Error: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Idempotency-Key", idempotencyKey)

	start := time.Now()
	resp, err := client.Do(req)
	result := requestResult{ResponseTime: time.Since(start)}
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode == http.StatusOK
	if !result.Success {
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return result
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *loadStats) {
	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d\n", stats.SuccessfulRequests)
	fmt.Printf("Failed Requests:     %d\n", stats.FailedRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", float64(stats.TotalRequests)/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P95 Response:        %v\n", percentile(sorted, 95))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
}

// verifyBalances checks that every idempotency key was applied exactly once
func verifyBalances(
	client *http.Client,
	baseURL string,
	accounts []account,
	initial map[string]decimal.Decimal,
	usedKeys map[string]map[int]bool,
	amount string,
) {
	step := decimal.RequireFromString(amount)

	fmt.Println("\n================= BALANCE CHECK =================")
	ok := true
	for _, acc := range accounts {
		balance, err := getBalance(client, baseURL, acc.Token)
		if err != nil {
			fmt.Printf("%s: could not read balance: %v\n", acc.Username, err)
			ok = false
			continue
		}

		expected := initial[acc.Username].Add(step.Mul(decimal.NewFromInt(int64(len(usedKeys[acc.Username])))))
		status := "OK"
		if !balance.Equal(expected) {
			status = "MISMATCH"
			ok = false
		}
		fmt.Printf("%-20s balance %s, expected %s  %s\n", acc.Username, balance.StringFixed(2), expected.StringFixed(2), status)
	}

	if ok {
		fmt.Println("Every deposit was applied exactly once")
	} else {
		fmt.Println("Balances do not match the accepted deposits")
	}
}
