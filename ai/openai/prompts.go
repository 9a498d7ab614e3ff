package openai

const rankingResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "ratings": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "sentence": {
            "type": "string"
          },
          "plausibility": {
            "type": "integer",
            "minimum": 1,
            "maximum": 10
          }
        },
        "required": ["sentence", "plausibility"],
        "additionalProperties": false
      }
    }
  },
  "required": ["ratings"],
  "additionalProperties": false
}`

const rankingPromptTemplate = `You will receive candidate decodings of a Morse code transmission, one per
line. Each candidate is a sequence of uppercase words. Rate how plausible each
candidate is as an actual transmitted message and return the ratings as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Rate every candidate exactly once, repeating its text verbatim in the "sentence" field.
- Plausibility is an integer from 1 (random letter noise) to 10 (a natural, meaningful message).
- Short procedural messages like "SOS" or "HELLO WORLD" are plausible; runs of filler words like "E E E E T" are not.
- Grammar matters more than length. A short coherent phrase outranks a long incoherent one.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input:
SOS
EE E TEE

Output:
{
  "ratings": [
    {"sentence":"SOS","plausibility":9},
    {"sentence":"EE E TEE","plausibility":2}
  ]
}`
