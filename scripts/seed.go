package main

import (
	"log"

	"eduapi/config"
	"eduapi/database"
	"eduapi/editor"
	"eduapi/models"
	"eduapi/models/blocks"
	"eduapi/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeds the database with demo subjects and lessons. Lesson bodies are
// composed through the editor package, the same way the admin form builds
// them.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	// Wipe existing content
	wipe := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped()
	if err := wipe.Delete(&models.Lesson{}).Error; err != nil {
		log.Fatalf("Failed to clear lessons: %v", err)
	}
	if err := wipe.Delete(&models.Subject{}).Error; err != nil {
		log.Fatalf("Failed to clear subjects: %v", err)
	}

	js := models.Subject{
		Title:       "JavaScript",
		Description: "Core JavaScript from variables to the DOM.",
	}
	react := models.Subject{
		Title:       "React",
		Description: "Building user interfaces with components and JSX.",
	}
	if err := db.Create(&js).Error; err != nil {
		log.Fatalf("Failed to create subject: %v", err)
	}
	if err := db.Create(&react).Error; err != nil {
		log.Fatalf("Failed to create subject: %v", err)
	}

	seedLesson(db, js.ID, variablesLesson())
	seedLesson(db, js.ID, domLesson())
	seedLesson(db, react.ID, jsxLesson())

	log.Println("Seeding completed successfully.")
}

func seedLesson(db *gorm.DB, subjectID uint, doc *editor.Document) {
	lesson := models.Lesson{
		Title:         doc.Title,
		SubjectID:     subjectID,
		ContentBlocks: datatypes.NewJSONType(doc.Payload()),
		Slug:          utils.Slugify(doc.Title),
	}
	if err := db.Create(&lesson).Error; err != nil {
		log.Fatalf("Failed to create lesson %q: %v", doc.Title, err)
	}
	log.Printf("Seeded lesson %q (slug %s)", lesson.Title, lesson.Slug)
}

func variablesLesson() *editor.Document {
	doc := editor.New()
	doc.Title = "Introduction to JavaScript Variables"
	doc.AddBlock(blocks.TypeHeading)
	doc.UpdateField(0, "text", "Declaring Variables")
	doc.AddBlock(blocks.TypeParagraph)
	doc.UpdateField(1, "text", "In JavaScript, you can declare variables using var, let, and const. let and const are block-scoped, which is a key feature introduced in ES6.")
	doc.AddBlock(blocks.TypeCode)
	doc.UpdateField(2, "code", "let name = 'EduPlatform';\nconst year = 2024;\nconsole.log(name, year);")
	return doc
}

func domLesson() *editor.Document {
	doc := editor.New()
	doc.Title = "What is the DOM?"
	doc.AddBlock(blocks.TypeParagraph)
	doc.UpdateField(0, "text", "The Document Object Model (DOM) is a programming interface for web documents. It represents the page so that programs can change the document structure, style, and content.")
	doc.AddBlock(blocks.TypeLinkList)
	doc.AddLink(1)
	doc.UpdateLink(1, 0, "title", "MDN - Introduction to the DOM")
	doc.UpdateLink(1, 0, "url", "https://developer.mozilla.org/en-US/docs/Web/API/Document_Object_Model/Introduction")
	return doc
}

func jsxLesson() *editor.Document {
	doc := editor.New()
	doc.Title = "Understanding JSX"
	doc.AddBlock(blocks.TypeParagraph)
	doc.UpdateField(0, "text", "JSX stands for JavaScript XML. It is a syntax extension for JavaScript, and it allows you to write HTML-like code in your React components.")
	doc.AddBlock(blocks.TypeCode)
	doc.UpdateField(1, "code", "const element = <h1>Hello, world!</h1>;\nReactDOM.render(element, document.getElementById('root'));")
	return doc
}
