package anthropic

// PlantAnalysisPrompt is the fixed instruction sent with a plant image. The
// classifier is asked for exactly one of the five condition literals.
const PlantAnalysisPrompt = `Analyze this plant image and determine its health condition. Respond with ONLY ONE of these exact words: healthy, fungal, pest, deficiency, or overwatering. Base your assessment on visible signs like leaf color, spots, wilting, discoloration, or pest damage.`

// GardeningSystemPrompt frames the chat assistant's role for the Q&A flow.
const GardeningSystemPrompt = `You are a helpful gardening assistant. Answer gardening questions concisely and practically.`
