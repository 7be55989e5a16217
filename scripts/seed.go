package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"guildtrivia/config"
	"guildtrivia/database"
	"guildtrivia/models"
)

// Seeds a demo guild, a couple of players and one guild challenge so a
// fresh database has something to play with.
func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	guild := models.Guild{Name: "The Night Owls"}
	if err := db.FirstOrCreate(&guild, models.Guild{Name: guild.Name}).Error; err != nil {
		log.Fatalf("Seeding guild failed: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Hashing password failed: %v", err)
	}

	players := []models.User{
		{Name: "Alice", Email: "alice@example.com", Password: string(hashed), GuildID: &guild.ID},
		{Name: "Bob", Email: "bob@example.com", Password: string(hashed), GuildID: &guild.ID},
		{Name: "Carol", Email: "carol@example.com", Password: string(hashed)},
	}
	for i := range players {
		if err := db.FirstOrCreate(&players[i], models.User{Email: players[i].Email}).Error; err != nil {
			log.Fatalf("Seeding user %s failed: %v", players[i].Email, err)
		}
	}

	challenge := models.Challenge{
		Name:             "General Knowledge",
		Description:      "A warm-up round for new players.",
		Difficulty:       1,
		IsGuildChallenge: true,
		Questions: []models.Question{
			{
				QuestionText: "What is the answer to life, the universe and everything?",
				Points:       10,
				Answers: []models.Answer{
					{Answer: "42", IsCorrect: true},
					{Answer: "41"},
					{Answer: "Love"},
				},
			},
			{
				QuestionText: "Which planet is known as the Red Planet?",
				Points:       5,
				Answers: []models.Answer{
					{Answer: "Mars", IsCorrect: true},
					{Answer: "Venus"},
					{Answer: "Jupiter"},
				},
			},
		},
	}

	var existing models.Challenge
	if err := db.Where("name = ?", challenge.Name).First(&existing).Error; err != nil {
		if err := db.Create(&challenge).Error; err != nil {
			log.Fatalf("Seeding challenge failed: %v", err)
		}
	}

	log.Println("Seeding completed!")
}
