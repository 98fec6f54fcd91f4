package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

var baseURL = "http://localhost:8080"

func main() {
	gofakeit.Seed(time.Now().UnixNano())
	if v := os.Getenv("SEED_BASE_URL"); v != "" {
		baseURL = v
	}

	// A handful of guest users.
	tokens := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		tok := guestLogin(gofakeit.Username())
		if tok == "" {
			log.Fatal("could not obtain token, aborting seeding process")
		}
		tokens = append(tokens, tok)
	}

	// Posts by the first two users.
	postIDs := make([]uint64, 0, 6)
	for i := 0; i < 6; i++ {
		id := createPost(tokens[i%2], gofakeit.Sentence(12))
		if id != 0 {
			postIDs = append(postIDs, id)
		}
	}

	// Comments and threaded replies.
	for _, pid := range postIDs {
		cid := createComment(tokens[2], pid, gofakeit.Sentence(8), nil)
		if cid != 0 {
			createComment(tokens[3], pid, gofakeit.Sentence(6), &cid)
		}
	}

	// Likes from everyone on everything, toggled once.
	for _, tok := range tokens {
		for _, pid := range postIDs {
			likePost(tok, pid)
		}
	}

	listPosts()
	leaderboard()
}

func guestLogin(username string) string {
	data, _ := json.Marshal(map[string]string{"username": username})
	resp, err := http.Post(baseURL+"/auth/guest", "application/json", bytes.NewBuffer(data))
	if err != nil {
		log.Println("Error in guestLogin:", err)
		return ""
	}
	defer resp.Body.Close()
	var result map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&result)
	token, _ := result["access_token"].(string)
	log.Printf("guestLogin: %s status: %s", username, resp.Status)
	return token
}

func createPost(token, content string) uint64 {
	data, _ := json.Marshal(map[string]string{"content": content})
	req, _ := http.NewRequest("POST", baseURL+"/posts", bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Println("Error in createPost:", err)
		return 0
	}
	defer resp.Body.Close()
	var result map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&result)
	id, _ := result["id"].(float64)
	log.Printf("createPost status: %s id: %d", resp.Status, uint64(id))
	return uint64(id)
}

func createComment(token string, postID uint64, content string, parentID *uint64) uint64 {
	payload := map[string]any{"content": content}
	if parentID != nil {
		payload["parent_id"] = *parentID
	}
	data, _ := json.Marshal(payload)
	url := fmt.Sprintf("%s/posts/%d/comments", baseURL, postID)
	req, _ := http.NewRequest("POST", url, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Println("Error in createComment:", err)
		return 0
	}
	defer resp.Body.Close()
	var result map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&result)
	id, _ := result["id"].(float64)
	log.Printf("createComment status: %s id: %d", resp.Status, uint64(id))
	return uint64(id)
}

func likePost(token string, postID uint64) {
	url := fmt.Sprintf("%s/posts/%d/like", baseURL, postID)
	req, _ := http.NewRequest("POST", url, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Println("Error in likePost:", err)
		return
	}
	defer resp.Body.Close()
	log.Printf("likePost %d status: %s", postID, resp.Status)
}

func listPosts() {
	resp, err := http.Get(baseURL + "/posts")
	if err != nil {
		log.Println("Error in listPosts:", err)
		return
	}
	defer resp.Body.Close()
	log.Println("listPosts status:", resp.Status)
}

func leaderboard() {
	resp, err := http.Get(baseURL + "/leaderboard")
	if err != nil {
		log.Println("Error in leaderboard:", err)
		return
	}
	defer resp.Body.Close()
	var rows []map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&rows)
	log.Printf("leaderboard status: %s entries: %d", resp.Status, len(rows))
}
