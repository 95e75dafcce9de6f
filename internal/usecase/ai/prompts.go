package ai

// Prompt templates sent to the LLM backend. The evaluation prompt demands a
// bare JSON object; the parser still tolerates markdown-fenced output.

const generateQuestionPrompt = `You are a senior technical interviewer for the role of %s.
Your goal is to assess a candidate with %s difficulty level.

Generate 1 technical interview question.
Topic focus: %s

Return ONLY the question text. Do not include options or numbering.`

const evaluateAnswerPrompt = `You are a senior technical interviewer.
I asked candidates applying for %s: "%s"
Their answer: "%s"

Evaluate CONCISELY. Return ONLY a valid JSON object:
{
  "score": (0-10),
  "correctness": "Correct"|"Partially Correct"|"Incorrect",
  "feedback": "Max 15 words explaining rating.",
  "ideal_answer": "Max 15 words summary.",
  "improvement_tips": ["Max 2 short tips"],
  "missing_points": ["Max 2 short points"]
}`
