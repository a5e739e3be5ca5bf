package gemini

const systemPromptHead = `You read photos of Spanish national identity cards (DNI) for a hotel check-in desk.
Read the machine readable zone (MRZ) on the back and the printed text on both sides.

Return ONLY one JSON object with exactly these string keys: `

const systemPromptTail = `.

Rules:
- Copy MRZ values character for character, keeping the filler character "<" out of names.
- fechaNacimiento and fechaCaducidad are the six-digit YYMMDD values from the MRZ.
- digitoControlNumero, digitoControlFechaNac and digitoControlCaducidad are the single check digits that follow numeroSoporte, fechaNacimiento and fechaCaducidad in the MRZ.
- apellidos holds all surnames separated by one space; nombres holds the given names.
- direccion, localidad, provincia and lugarNacimiento come from the printed back side.
- Use an empty string for anything you cannot read. Never guess.`

const userPrompt = "Extract the document fields. Answer with the JSON object only."
