// Package project provides the YAML build description: project identity,
// components, publications, jars, and which publication's descriptor goes
// into which jar.
//
// # Schema Overview
//
//	project:
//	  group: com.example
//	  name: pom-test-jar
//	  version: 0.0.1
//	  description: Example library
//	build_dir: build
//	components:
//	  - name: java
//	    roots:
//	      - dir: build/classes
//	        include: ["**/*.class"]
//	      - dir: src/main/resources
//	    dependencies:
//	      - group: org.slf4j
//	        artifact: slf4j-api
//	        version: 2.0.9
//	        scope: compile
//	publications:
//	  - name: MyPub
//	    from: java
//	    version: 1.0.0-beta
//	jars:
//	  - name: jar
//	pom_to_jar:
//	  - new_pub: Java
//	    jar: jar
//	  - pub: MyPub
//	    jar: jar
//
// # Defaults
//
//   - build_dir: "build"
//   - components: a "java" component packaging <build_dir>/classes
//   - jars: one jar named "jar" from the "java" component
//   - jar file: <build_dir>/libs/<project.name>[-<jar name>][-<version>].jar
//   - dependency scope: "runtime"
package project
