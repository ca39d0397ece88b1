package records

// EyeImages splits image_urls by position: even indices belong to the left
// eye, odd indices to the right eye. Empty slots are skipped.
func EyeImages(record PatientRecord) (left, right []string) {
	left, right = []string{}, []string{}
	for i, url := range record.ImageURLs {
		if url == "" {
			continue
		}
		if i%2 == 0 {
			left = append(left, url)
		} else {
			right = append(right, url)
		}
	}
	return left, right
}

// EyeOfImage reports which eye the image at index belongs to.
func EyeOfImage(index int) Eye {
	if index%2 == 0 {
		return EyeLeft
	}
	return EyeRight
}

// PlaceImage returns a copy of urls with url stored at the first free slot
// of the eye's parity. The list is padded with empty slots when needed so
// existing images keep their eye.
func PlaceImage(urls []string, eye Eye, url string) []string {
	parity := 0
	if eye == EyeRight {
		parity = 1
	}

	result := cloneTags(urls)
	for i := parity; i < len(result); i += 2 {
		if result[i] == "" {
			result[i] = url
			return result
		}
	}
	if len(result)%2 != parity {
		result = append(result, "")
	}
	return append(result, url)
}
