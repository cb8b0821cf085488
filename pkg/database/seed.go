package database

import (
	"os"

	"quizify_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed inserts static lookup rows and, on an empty database, a set of demo
// users, categories and quizzes. Lookup tables are idempotent; demo content is
// only inserted when its table is empty.
func Seed(db *gorm.DB) error {
	roles := []model.Role{
		{RoleID: model.RoleAdmin, Name: "Admin"},
		{RoleID: model.RoleManagement, Name: "Management"},
		{RoleID: model.RoleVerified, Name: "Verified user"},
		{RoleID: model.RoleRegular, Name: "Regular user"},
	}
	for _, r := range roles {
		if err := db.Where(model.Role{RoleID: r.RoleID}).FirstOrCreate(&r).Error; err != nil {
			return err
		}
	}

	difficulties := []model.Difficulty{
		{ID: 1, Difficulty: model.DifficultyEasy},
		{ID: 2, Difficulty: model.DifficultyMedium},
		{ID: 3, Difficulty: model.DifficultyHard},
	}
	for _, d := range difficulties {
		if err := db.Where(model.Difficulty{ID: d.ID}).FirstOrCreate(&d).Error; err != nil {
			return err
		}
	}

	questionTypes := []model.QuestionType{
		{QuestionTypeID: model.QuestionTypeMultiple, Name: "multiple"},
		{QuestionTypeID: model.QuestionTypeBoolean, Name: "boolean"},
	}
	for _, qt := range questionTypes {
		if err := db.Where(model.QuestionType{QuestionTypeID: qt.QuestionTypeID}).FirstOrCreate(&qt).Error; err != nil {
			return err
		}
	}

	if err := seedUsers(db); err != nil {
		return err
	}
	return seedQuizzes(db)
}

func seedUsers(db *gorm.DB) error {
	var count int64
	db.Model(&model.User{}).Count(&count)
	if count > 0 {
		return nil
	}

	seed := []struct {
		roleID   uint
		username string
		email    string
		password string
		envVar   string
	}{
		{model.RoleAdmin, "admin", "admin@quizify.local", "Admin123", "QUIZIFY_SEED_ADMIN_PASSWORD"},
		{model.RoleManagement, "manager", "manager@quizify.local", "Manager123", "QUIZIFY_SEED_MANAGER_PASSWORD"},
		{model.RoleVerified, "verified", "verified@quizify.local", "Verified123", "QUIZIFY_SEED_VERIFIED_PASSWORD"},
		{model.RoleRegular, "user", "user@quizify.local", "User123", "QUIZIFY_SEED_USER_PASSWORD"},
	}

	for _, u := range seed {
		password := u.password
		if env := os.Getenv(u.envVar); env != "" {
			password = env
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := model.User{
			RoleID:       u.roleID,
			Username:     u.username,
			Email:        u.email,
			PasswordHash: string(hash),
			Verified:     u.roleID == model.RoleVerified,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}
	return nil
}

type seedQuestion struct {
	text    string
	options []string
	correct string
}

type seedQuiz struct {
	name       string
	category   uint
	difficulty uint
	questions  []seedQuestion
}

var demoCategories = []string{
	"History & Geography",
	"Science",
	"Technology",
	"Arts & Literature",
	"Entertainment",
	"Sports",
}

var demoQuizzes = []seedQuiz{
	{name: "Ancient Civilizations", category: 1, difficulty: 3, questions: []seedQuestion{
		{"Which civilization built the Great Pyramid of Giza?", []string{"Egyptians", "Romans", "Mayans", "Greeks"}, "Egyptians"},
		{"What was the capital of the Roman Empire?", []string{"Rome", "Athens", "Paris", "London"}, "Rome"},
		{"The Code of Hammurabi originated in which city?", []string{"Babylon", "Sparta", "Troy", "Thebes"}, "Babylon"},
		{"Which river was central to Ancient India?", []string{"Indus", "Nile", "Yellow River", "Amazon"}, "Indus"},
		{"Who was the first emperor of China?", []string{"Qin Shi Huang", "Sun Tzu", "Confucius", "Kublai Khan"}, "Qin Shi Huang"},
	}},
	{name: "Solar System Secrets", category: 2, difficulty: 2, questions: []seedQuestion{
		{"Which planet is known as the Red Planet?", []string{"Mars", "Venus", "Jupiter", "Saturn"}, "Mars"},
		{"What is the largest planet in our solar system?", []string{"Jupiter", "Saturn", "Neptune", "Earth"}, "Jupiter"},
		{"Which planet has the most famous ring system?", []string{"Saturn", "Uranus", "Jupiter", "Mars"}, "Saturn"},
		{"What is the closest star to Earth?", []string{"The Sun", "Proxima Centauri", "Sirius", "Vega"}, "The Sun"},
		{"Which planet is closest to the Sun?", []string{"Mercury", "Venus", "Earth", "Mars"}, "Mercury"},
	}},
	{name: "Modern Web Tech", category: 3, difficulty: 3, questions: []seedQuestion{
		{"What does HTML stand for?", []string{"HyperText Markup Language", "High Tech Modern Language", "Hyperlink Text Mgmt", "Home Tool Markup"}, "HyperText Markup Language"},
		{"Which language is used for styling web pages?", []string{"CSS", "HTML", "Python", "SQL"}, "CSS"},
		{"What is the primary language for browser scripting?", []string{"JavaScript", "Java", "PHP", "C++"}, "JavaScript"},
		{"Which framework is maintained by Google?", []string{"Angular", "React", "Vue", "Svelte"}, "Angular"},
		{"What does SQL stand for?", []string{"Structured Query Language", "Simple Quick Logic", "System Query Level", "Standard Quality List"}, "Structured Query Language"},
	}},
	{name: "World Geography", category: 1, difficulty: 1, questions: []seedQuestion{
		{"What is the largest continent by land area?", []string{"Asia", "Africa", "North America", "Europe"}, "Asia"},
		{"Which ocean is the largest in the world?", []string{"Pacific Ocean", "Atlantic Ocean", "Indian Ocean", "Arctic Ocean"}, "Pacific Ocean"},
		{"What is the longest river in the world?", []string{"Nile", "Amazon", "Yangtze", "Mississippi"}, "Nile"},
		{"Which country has the largest population?", []string{"India", "China", "USA", "Indonesia"}, "India"},
		{"What is the capital of Japan?", []string{"Tokyo", "Kyoto", "Osaka", "Seoul"}, "Tokyo"},
	}},
	{name: "Human Biology", category: 2, difficulty: 2, questions: []seedQuestion{
		{"How many bones are in the adult human body?", []string{"206", "180", "250", "212"}, "206"},
		{"Which organ is responsible for pumping blood?", []string{"Heart", "Lungs", "Brain", "Liver"}, "Heart"},
		{"What is the largest organ of the human body?", []string{"Skin", "Liver", "Large Intestine", "Heart"}, "Skin"},
		{"What type of blood cells fight infection?", []string{"White Blood Cells", "Red Blood Cells", "Platelets", "Plasma"}, "White Blood Cells"},
		{"Which part of the brain controls balance?", []string{"Cerebellum", "Cerebrum", "Brainstem", "Thalamus"}, "Cerebellum"},
	}},
	{name: "Literary Classics", category: 4, difficulty: 3, questions: []seedQuestion{
		{"Who wrote 'Romeo and Juliet'?", []string{"William Shakespeare", "Charles Dickens", "Mark Twain", "Jane Austen"}, "William Shakespeare"},
		{"In 'Moby Dick', what kind of animal is Moby Dick?", []string{"Sperm Whale", "Giant Squid", "Great White Shark", "Blue Whale"}, "Sperm Whale"},
		{"Who wrote the 'Harry Potter' series?", []string{"J.K. Rowling", "J.R.R. Tolkien", "George R.R. Martin", "C.S. Lewis"}, "J.K. Rowling"},
		{"What is the name of Sherlock Holmes' companion?", []string{"Dr. Watson", "Dr. Jekyll", "Professor Moriarty", "Inspector Lestrade"}, "Dr. Watson"},
		{"Which novel begins with 'It was the best of times, it was the worst of times'?", []string{"A Tale of Two Cities", "Great Expectations", "Les Misérables", "War and Peace"}, "A Tale of Two Cities"},
	}},
	{name: "Cinema History", category: 5, difficulty: 1, questions: []seedQuestion{
		{"Which movie features the character Jack Sparrow?", []string{"Pirates of the Caribbean", "Star Wars", "Indiana Jones", "The Mummy"}, "Pirates of the Caribbean"},
		{"Who directed 'Jurassic Park'?", []string{"Steven Spielberg", "James Cameron", "Christopher Nolan", "Martin Scorsese"}, "Steven Spielberg"},
		{"What was the first feature-length animated movie?", []string{"Snow White", "Pinocchio", "Toy Story", "Dumbo"}, "Snow White"},
		{"In which movie did the character Joker first appear?", []string{"Batman (1966)", "The Dark Knight", "Batman (1989)", "Joker"}, "Batman (1966)"},
		{"Which actor played Iron Man in the MCU?", []string{"Robert Downey Jr.", "Chris Evans", "Mark Ruffalo", "Chris Hemsworth"}, "Robert Downey Jr."},
	}},
	{name: "Sports Trivia", category: 6, difficulty: 1, questions: []seedQuestion{
		{"How many players are on a soccer team on the field?", []string{"11", "10", "12", "9"}, "11"},
		{"Which country won the first FIFA World Cup in 1930?", []string{"Uruguay", "Brazil", "Argentina", "Italy"}, "Uruguay"},
		{"In basketball, how many points is a standard layup worth?", []string{"2", "1", "3", "0"}, "2"},
		{"Who holds the record for the most Olympic Gold Medals?", []string{"Michael Phelps", "Usain Bolt", "Carl Lewis", "Larisa Latynina"}, "Michael Phelps"},
		{"What is the diameter of a basketball hoop in inches?", []string{"18 inches", "16 inches", "20 inches", "22 inches"}, "18 inches"},
	}},
}

func seedQuizzes(db *gorm.DB) error {
	var count int64
	db.Model(&model.Category{}).Count(&count)
	if count > 0 {
		return nil
	}

	var admin model.User
	if err := db.Where("role_id = ?", model.RoleAdmin).First(&admin).Error; err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, name := range demoCategories {
			if err := tx.Create(&model.Category{CategoryName: name}).Error; err != nil {
				return err
			}
		}

		for _, sq := range demoQuizzes {
			quiz := model.Quiz{
				QuizName:      sq.name,
				UserID:        admin.UserID,
				CategoryID:    sq.category,
				DifficultyID:  sq.difficulty,
				QuestionCount: len(sq.questions),
				Duration:      15,
			}
			if err := tx.Create(&quiz).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.Category{}).
				Where("category_id = ?", sq.category).
				Update("times_chosen", gorm.Expr("times_chosen + 1")).Error; err != nil {
				return err
			}

			for i, q := range sq.questions {
				question := model.Question{
					QuizID:         quiz.QuizID,
					QuestionTypeID: model.QuestionTypeMultiple,
					QuestionText:   q.text,
					Position:       i + 1,
					TimeLimit:      30,
				}
				if err := tx.Create(&question).Error; err != nil {
					return err
				}
				for _, opt := range q.options {
					answer := model.AnswerOption{
						QuestionID: question.QuestionID,
						AnswerText: opt,
						IsCorrect:  opt == q.correct,
					}
					if err := tx.Create(&answer).Error; err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}
