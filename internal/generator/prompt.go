package generator

import "fmt"

const systemPrompt = `You are an expert Jeopardy question writer. Create engaging questions with proper difficulty scaling. Avoid obvious definitions but keep questions fair and answerable. Return ONLY valid JSON, no extra text.`

const boardPrompt = `Generate a Jeopardy game about %[1]q. Create 6 related categories and 5 questions per category (values: 200, 400, 600, 800, 1000).

DIFFICULTY GUIDELINES (follow this progression):

$200 - EASY: Well-known facts, famous people/events, common knowledge in the category.
Example: "This planet is known as the Red Planet" -> Mars

$400 - MODERATE: Requires some knowledge but still accessible. Use interesting facts or indirect clues.
Example: "Neil Armstrong took his famous first steps on the Moon in this year" -> 1969

$600 - MEDIUM: Requires specific knowledge. Add context, dates, or connections that narrow it down.
Example: "This Soviet cosmonaut became the first human in space in 1961" -> Yuri Gagarin

$800 - CHALLENGING: For enthusiasts. Specific historical details, lesser-known facts, or connecting multiple pieces of information.
Example: "This NASA mission in 1970 famously radioed 'Houston, we've had a problem' after an oxygen tank explosion" -> Apollo 13

$1000 - DIFFICULT: Deep knowledge required. Obscure facts, specific technical details, or advanced connections.
Example: "This Voyager spacecraft launched in 1977 became the first human-made object to enter interstellar space in 2012" -> Voyager 1

QUESTION WRITING RULES:
- Make questions interesting with context, not just definitions
- MUST progress from easy ($200) to hard ($1000) in each category
- Avoid overly obscure trivia even at $1000
- Use varied styles: "This person...", "In this year...", "This event...", "This famous..."
- Be factually accurate and make sure the wording describes the answer
- NEVER include the answer word or any form of it in the question
  * BAD: "Boiling water is used for this pasta cooking method" -> "Boiling"
  * GOOD: "This moist-heat cooking method uses water at 212F" -> "Boiling"
- Before writing each question, check: does ANY word in the question match ANY word in the answer? If yes, rewrite!

Return ONLY a JSON object with this exact structure:
{
  "categories": ["Category1", "Category2", "Category3", "Category4", "Category5", "Category6"],
  "questions": [
    [
      {"value": 200, "question": "Question text", "answer": "Short answer"},
      {"value": 400, "question": "Question text", "answer": "Short answer"},
      {"value": 600, "question": "Question text", "answer": "Short answer"},
      {"value": 800, "question": "Question text", "answer": "Short answer"},
      {"value": 1000, "question": "Question text", "answer": "Short answer"}
    ],
    ... (5 more category arrays)
  ]
}

Keep answers SHORT (1-4 words max). All categories must relate to: %[1]s`

func buildPrompt(topic string) string {
	return fmt.Sprintf(boardPrompt, topic)
}
